package highlevel

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"callbridge-service/internal/app/config"
	"callbridge-service/internal/app/contracts"
	"callbridge-service/internal/pkg/constvars"
	"callbridge-service/internal/pkg/dto/requests"
	"callbridge-service/internal/pkg/dto/responses"
	"callbridge-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	highLevelClientInstance contracts.HighLevelClient
	onceHighLevelClient     sync.Once
)

type highLevelClient struct {
	BaseUrl    string
	APIKey     string
	CalendarID string
	UserID     string
	Timezone   string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewHighLevelClient builds the calendar REST client. All outbound calls
// share one token-bucket limiter so the relay stays under the CRM's
// per-second quota even when several requests arrive at once.
func NewHighLevelClient(cfg *config.InternalConfig, logger *zap.Logger) contracts.HighLevelClient {
	onceHighLevelClient.Do(func() {
		rps := cfg.HighLevel.MaxRequestPerSecond
		if rps <= 0 {
			rps = 1
		}
		highLevelClientInstance = &highLevelClient{
			BaseUrl:    cfg.HighLevel.BaseUrl,
			APIKey:     cfg.HighLevel.APIKey,
			CalendarID: cfg.HighLevel.CalendarID,
			UserID:     cfg.HighLevel.UserID,
			Timezone:   cfg.HighLevel.Timezone,
			HTTPClient: &http.Client{
				Timeout: time.Duration(cfg.HighLevel.TimeoutInSeconds) * time.Second,
			},
			Limiter: rate.NewLimiter(rate.Limit(rps), rps),
			Log:     logger,
		}
	})
	return highLevelClientInstance
}

func (c *highLevelClient) FindAvailableSlots(ctx context.Context, startMillis, endMillis int64) (responses.HighLevelAvailability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("highLevelClient.FindAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("start_millis", startMillis),
		zap.Int64("end_millis", endMillis),
	)

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	query := url.Values{}
	query.Set("calendarId", c.CalendarID)
	query.Set("startDate", strconv.FormatInt(startMillis, 10))
	query.Set("endDate", strconv.FormatInt(endMillis, 10))
	query.Set("timezone", c.Timezone)
	query.Set("userId", c.UserID)

	endpoint := fmt.Sprintf("%s/appointments/slots?%s", c.BaseUrl, query.Encode())
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("highLevelClient.FindAvailableSlots error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("highLevelClient.FindAvailableSlots error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("highLevelClient.FindAvailableSlots error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ServiceHighLevel)
	}

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Error("highLevelClient.FindAvailableSlots upstream rejected the request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, &exceptions.UpstreamAPIError{
			Service:    constvars.ServiceHighLevel,
			StatusCode: resp.StatusCode,
			Body:       bodyBytes,
		}
	}

	availability := make(responses.HighLevelAvailability)
	if err := json.Unmarshal(bodyBytes, &availability); err != nil {
		c.Log.Error("highLevelClient.FindAvailableSlots error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ServiceHighLevel)
	}
	return availability, nil
}

func (c *highLevelClient) CreateAppointment(ctx context.Context, booking *requests.HighLevelBooking) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("highLevelClient.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("selected_slot", booking.SelectedSlot),
	)

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	requestJSON, err := json.Marshal(booking)
	if err != nil {
		c.Log.Error("highLevelClient.CreateAppointment error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/appointments/", c.BaseUrl)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("highLevelClient.CreateAppointment error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("highLevelClient.CreateAppointment error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("highLevelClient.CreateAppointment error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ServiceHighLevel)
	}

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Error("highLevelClient.CreateAppointment upstream rejected the booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, &exceptions.UpstreamAPIError{
			Service:    constvars.ServiceHighLevel,
			StatusCode: resp.StatusCode,
			Body:       bodyBytes,
		}
	}
	return bodyBytes, nil
}

func (c *highLevelClient) setHeaders(req *http.Request) {
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.APIKey)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
}
