package controllers

import (
	"context"
	"errors"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"callbridge-service/internal/app/config"
	"callbridge-service/internal/app/services/shared/ratelimiter"
	"callbridge-service/internal/pkg/constvars"
	"callbridge-service/internal/pkg/dto/requests"
	"callbridge-service/internal/pkg/dto/responses"
	"callbridge-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubLeadUsecase struct {
	result *responses.LeadResult
	err    error

	gotRequest *requests.InboundLead
}

func (s *stubLeadUsecase) HandleInboundLead(_ context.Context, request *requests.InboundLead) (*responses.LeadResult, error) {
	s.gotRequest = request
	return s.result, s.err
}

type fakeRedisRepo struct {
	values map[string]string
	getErr error
}

func newFakeRedisRepo() *fakeRedisRepo {
	return &fakeRedisRepo{values: make(map[string]string)}
}

func (f *fakeRedisRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	encoded, _ := json.Marshal(value)
	f.values[key] = string(encoded)
	return nil
}

func (f *fakeRedisRepo) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.values[key], nil
}

func (f *fakeRedisRepo) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepo) Increment(_ context.Context, key string) error {
	current, _ := strconv.Atoi(f.values[key])
	f.values[key] = strconv.Itoa(current + 1)
	return nil
}

func (f *fakeRedisRepo) TrySetNX(_ context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	if _, exists := f.values[key]; exists {
		return false, nil
	}
	encoded, _ := json.Marshal(value)
	f.values[key] = string(encoded)
	return true, nil
}

func newLeadController(usecase *stubLeadUsecase, perMinute int) *LeadController {
	limiter := ratelimiter.NewHookRateLimiter(newFakeRedisRepo(), zap.NewNop(), &config.InternalConfig{
		App: config.App{HookMaxRequestsPerMinute: perMinute},
	})
	return &LeadController{Log: zap.NewNop(), Usecase: usecase, Limiter: limiter}
}

func TestLeadController_HandleInboundLead(t *testing.T) {
	t.Run("reports the triggered call with the platform body", func(t *testing.T) {
		usecase := &stubLeadUsecase{result: &responses.LeadResult{
			Status:       constvars.StatusVoiceCallTriggered,
			CallResponse: json.RawMessage(`{"call_id":"c1"}`),
		}}
		ctrl := newLeadController(usecase, 0)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(constvars.MethodPost, "/webhook/lead", strings.NewReader(
			`{"phone":"2125551234","name":"Jordan"}`,
		))

		ctrl.HandleInboundLead(rec, req)

		assert.Equal(t, constvars.StatusOK, rec.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, constvars.StatusVoiceCallTriggered, body["status"])
		assert.Equal(t, map[string]interface{}{"call_id": "c1"}, body["call_response"])
		assert.Equal(t, "Jordan", usecase.gotRequest.Name)
	})

	t.Run("answers 400 for an undecodable body", func(t *testing.T) {
		ctrl := newLeadController(&stubLeadUsecase{}, 0)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(constvars.MethodPost, "/webhook/lead", strings.NewReader(`not json`))

		ctrl.HandleInboundLead(rec, req)

		assert.Equal(t, constvars.StatusBadRequest, rec.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, constvars.ErrClientMissingLeadData, body["error"])
	})

	t.Run("maps a validation failure to 400", func(t *testing.T) {
		ctrl := newLeadController(&stubLeadUsecase{
			err: exceptions.BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientMissingLeadData, constvars.ErrDevValidationFailed),
		}, 0)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(constvars.MethodPost, "/webhook/lead", strings.NewReader(`{"name":"Jordan"}`))

		ctrl.HandleInboundLead(rec, req)

		assert.Equal(t, constvars.StatusBadRequest, rec.Code)
	})

	t.Run("maps a dial failure to 500 with details", func(t *testing.T) {
		ctrl := newLeadController(&stubLeadUsecase{
			err: exceptions.ErrSendHTTPRequest(assertError("connection refused")),
		}, 0)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(constvars.MethodPost, "/webhook/lead", strings.NewReader(`{"phone":"2125551234"}`))

		ctrl.HandleInboundLead(rec, req)

		assert.Equal(t, constvars.StatusInternalServerError, rec.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, constvars.ErrClientVoiceCallFailed, body["error"])
	})

	t.Run("lets the lead through when the limiter store is down", func(t *testing.T) {
		usecase := &stubLeadUsecase{result: &responses.LeadResult{Status: constvars.StatusVoiceCallTriggered}}
		redisRepo := newFakeRedisRepo()
		redisRepo.getErr = errors.New("connection refused")
		limiter := ratelimiter.NewHookRateLimiter(redisRepo, zap.NewNop(), &config.InternalConfig{
			App: config.App{HookMaxRequestsPerMinute: 1},
		})
		ctrl := &LeadController{Log: zap.NewNop(), Usecase: usecase, Limiter: limiter}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(constvars.MethodPost, "/webhook/lead", strings.NewReader(`{"phone":"2125551234"}`))

		ctrl.HandleInboundLead(rec, req)

		assert.Equal(t, constvars.StatusOK, rec.Code)
		assert.NotNil(t, usecase.gotRequest)
	})

	t.Run("throttles the hook with Retry-After once the window is spent", func(t *testing.T) {
		usecase := &stubLeadUsecase{result: &responses.LeadResult{Status: constvars.StatusVoiceCallTriggered}}
		ctrl := newLeadController(usecase, 1)

		first := httptest.NewRecorder()
		ctrl.HandleInboundLead(first, httptest.NewRequest(constvars.MethodPost, "/webhook/lead", strings.NewReader(`{"phone":"2125551234"}`)))
		assert.Equal(t, constvars.StatusOK, first.Code)

		second := httptest.NewRecorder()
		ctrl.HandleInboundLead(second, httptest.NewRequest(constvars.MethodPost, "/webhook/lead", strings.NewReader(`{"phone":"2125551234"}`)))
		assert.Equal(t, constvars.StatusTooManyRequests, second.Code)
		assert.NotEmpty(t, second.Header().Get(constvars.HeaderRetryAfter))
	})
}
