package controllers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"callbridge-service/internal/pkg/constvars"
	"callbridge-service/internal/pkg/dto/requests"
	"callbridge-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubBookingUsecase struct {
	body []byte
	err  error

	gotRequest *requests.CreateBooking
}

func (s *stubBookingUsecase) CreateBooking(_ context.Context, request *requests.CreateBooking) ([]byte, error) {
	s.gotRequest = request
	return s.body, s.err
}

func newBookingController(usecase *stubBookingUsecase) *BookingController {
	return &BookingController{Log: zap.NewNop(), Usecase: usecase}
}

func TestBookingController_HandleCreateBooking(t *testing.T) {
	t.Run("passes the upstream body through on success", func(t *testing.T) {
		usecase := &stubBookingUsecase{body: []byte(`{"id":"appt_1","status":"booked"}`)}
		ctrl := newBookingController(usecase)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(constvars.MethodPost, "/book", strings.NewReader(
			`{"phone":"2125551234","startTime":"2024-06-10T09:00:00-04:00","name":"Jordan"}`,
		))

		ctrl.HandleCreateBooking(rec, req)

		assert.Equal(t, constvars.StatusOK, rec.Code)
		assert.Equal(t, `{"id":"appt_1","status":"booked"}`, rec.Body.String())
		assert.Equal(t, "2125551234", usecase.gotRequest.Phone)
	})

	t.Run("answers 400 for an undecodable body", func(t *testing.T) {
		ctrl := newBookingController(&stubBookingUsecase{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(constvars.MethodPost, "/book", strings.NewReader(`not json`))

		ctrl.HandleCreateBooking(rec, req)

		assert.Equal(t, constvars.StatusBadRequest, rec.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, constvars.ErrClientMissingBookingFields, body["error"])
	})

	t.Run("maps a validation error to 400 with its message", func(t *testing.T) {
		ctrl := newBookingController(&stubBookingUsecase{
			err: exceptions.BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientMissingBookingFields, constvars.ErrDevValidationFailed),
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(constvars.MethodPost, "/book", strings.NewReader(`{"phone":"2125551234"}`))

		ctrl.HandleCreateBooking(rec, req)

		assert.Equal(t, constvars.StatusBadRequest, rec.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, constvars.ErrClientMissingBookingFields, body["error"])
	})

	t.Run("maps an upstream rejection to 500 with the upstream body as details", func(t *testing.T) {
		ctrl := newBookingController(&stubBookingUsecase{
			err: &exceptions.UpstreamAPIError{
				Service:    constvars.ServiceHighLevel,
				StatusCode: constvars.StatusUnprocessableEntity,
				Body:       []byte(`{"msg":"slot taken"}`),
			},
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(constvars.MethodPost, "/book", strings.NewReader(
			`{"phone":"2125551234","startTime":"2024-06-10T09:00:00-04:00"}`,
		))

		ctrl.HandleCreateBooking(rec, req)

		assert.Equal(t, constvars.StatusInternalServerError, rec.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, constvars.ErrClientBookingFailed, body["error"])
		assert.Equal(t, map[string]interface{}{"msg": "slot taken"}, body["details"])
	})

	t.Run("maps a transport failure to 500 as a failed request", func(t *testing.T) {
		ctrl := newBookingController(&stubBookingUsecase{
			err: exceptions.ErrSendHTTPRequest(assertError("connection refused")),
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(constvars.MethodPost, "/book", strings.NewReader(
			`{"phone":"2125551234","startTime":"2024-06-10T09:00:00-04:00"}`,
		))

		ctrl.HandleCreateBooking(rec, req)

		assert.Equal(t, constvars.StatusInternalServerError, rec.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, constvars.ErrClientBookingRequestFailed, body["error"])
	})
}

type assertError string

func (e assertError) Error() string { return string(e) }
