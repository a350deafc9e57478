package voice

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"callbridge-service/internal/app/config"
	"callbridge-service/internal/app/contracts"
	"callbridge-service/internal/pkg/constvars"
	"callbridge-service/internal/pkg/dto/requests"
	"callbridge-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	voiceDialerInstance contracts.VoiceDialer
	onceVoiceDialer     sync.Once
)

type voiceDialer struct {
	CallUrl    string
	SecretKey  string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewVoiceDialer(cfg *config.InternalConfig, logger *zap.Logger) contracts.VoiceDialer {
	onceVoiceDialer.Do(func() {
		voiceDialerInstance = &voiceDialer{
			CallUrl:   cfg.Voice.CallUrl,
			SecretKey: cfg.Voice.SecretKey,
			HTTPClient: &http.Client{
				Timeout: time.Duration(cfg.Voice.TimeoutInSeconds) * time.Second,
			},
			Log: logger,
		}
	})
	return voiceDialerInstance
}

func (d *voiceDialer) Dial(ctx context.Context, call *requests.OutboundCall) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	d.Log.Info("voiceDialer.Dial called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(call)
	if err != nil {
		d.Log.Error("voiceDialer.Dial error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, d.CallUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		d.Log.Error("voiceDialer.Dial error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+d.SecretKey)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := d.HTTPClient.Do(req)
	if err != nil {
		d.Log.Error("voiceDialer.Dial error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		d.Log.Error("voiceDialer.Dial error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ServiceVoice)
	}

	// The platform's body is passed back to the webhook caller even when it
	// is an error document, as long as it is valid JSON.
	if !json.Valid(bodyBytes) {
		d.Log.Error("voiceDialer.Dial platform returned a non-JSON body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrDecodeResponse(nil, constvars.ServiceVoice)
	}

	d.Log.Info("voiceDialer.Dial call triggered",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return bodyBytes, nil
}
