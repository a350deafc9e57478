package bookings

import (
	"context"
	"errors"
	"testing"

	"callbridge-service/internal/app/config"
	"callbridge-service/internal/pkg/constvars"
	"callbridge-service/internal/pkg/dto/requests"
	"callbridge-service/internal/pkg/dto/responses"
	"callbridge-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubHighLevelClient struct {
	body []byte
	err  error

	gotBooking *requests.HighLevelBooking
}

func (s *stubHighLevelClient) FindAvailableSlots(_ context.Context, _, _ int64) (responses.HighLevelAvailability, error) {
	return nil, errors.New("not implemented")
}

func (s *stubHighLevelClient) CreateAppointment(_ context.Context, booking *requests.HighLevelBooking) ([]byte, error) {
	s.gotBooking = booking
	return s.body, s.err
}

func newTestUsecase(client *stubHighLevelClient) *bookingUsecase {
	return &bookingUsecase{
		HighLevelClient: client,
		InternalConfig: &config.InternalConfig{
			HighLevel: config.HighLevel{
				CalendarID: "cal_123",
				Timezone:   "America/New_York",
			},
		},
		Log: zap.NewNop(),
	}
}

func TestBookingUsecase_CreateBooking(t *testing.T) {
	t.Run("rejects a body without phone or startTime", func(t *testing.T) {
		uc := newTestUsecase(&stubHighLevelClient{})

		_, err := uc.CreateBooking(context.Background(), &requests.CreateBooking{Phone: "2125551234"})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientMissingBookingFields, customErr.ClientMessage)
	})

	t.Run("rejects a phone that does not survive normalization", func(t *testing.T) {
		client := &stubHighLevelClient{}
		uc := newTestUsecase(client)

		_, err := uc.CreateBooking(context.Background(), &requests.CreateBooking{
			Phone:     "call me maybe",
			StartTime: "2024-06-10T09:00:00-04:00",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "phone must be a valid international phone number", customErr.ClientMessage)
		assert.Nil(t, client.gotBooking)
	})

	t.Run("forwards a normalized booking and returns the upstream body", func(t *testing.T) {
		client := &stubHighLevelClient{body: []byte(`{"id":"appt_1"}`)}
		uc := newTestUsecase(client)

		body, err := uc.CreateBooking(context.Background(), &requests.CreateBooking{
			Phone:     "(212) 555-1234",
			StartTime: "2024-06-10T09:00:00-04:00",
			Email:     "lead@example.com",
			Name:      "Jordan",
		})

		assert.NoError(t, err)
		assert.Equal(t, []byte(`{"id":"appt_1"}`), body)
		assert.Equal(t, "cal_123", client.gotBooking.CalendarID)
		assert.Equal(t, "America/New_York", client.gotBooking.SelectedTimezone)
		assert.Equal(t, "2024-06-10T09:00:00-04:00", client.gotBooking.SelectedSlot)
		assert.Equal(t, "+12125551234", client.gotBooking.Phone)
		assert.Equal(t, "lead@example.com", client.gotBooking.Email)
		assert.Equal(t, "Jordan", client.gotBooking.Name)
	})

	t.Run("returns the client error untouched", func(t *testing.T) {
		upstreamErr := &exceptions.UpstreamAPIError{
			Service:    constvars.ServiceHighLevel,
			StatusCode: constvars.StatusUnprocessableEntity,
			Body:       []byte(`{"msg":"slot taken"}`),
		}
		uc := newTestUsecase(&stubHighLevelClient{err: upstreamErr})

		_, err := uc.CreateBooking(context.Background(), &requests.CreateBooking{
			Phone:     "2125551234",
			StartTime: "2024-06-10T09:00:00-04:00",
		})

		var apiErr *exceptions.UpstreamAPIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, upstreamErr, apiErr)
	})
}
