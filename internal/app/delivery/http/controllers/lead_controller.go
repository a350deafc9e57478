package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"callbridge-service/internal/app/contracts"
	"callbridge-service/internal/app/services/shared/ratelimiter"
	"callbridge-service/internal/pkg/constvars"
	"callbridge-service/internal/pkg/dto/requests"
	"callbridge-service/internal/pkg/exceptions"
	"callbridge-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type LeadController struct {
	Log     *zap.Logger
	Usecase contracts.LeadUsecase
	Limiter *ratelimiter.HookRateLimiter
}

var (
	leadControllerInstance *LeadController
	onceLeadController     sync.Once
)

func NewLeadController(logger *zap.Logger, usecase contracts.LeadUsecase, limiter *ratelimiter.HookRateLimiter) *LeadController {
	onceLeadController.Do(func() {
		leadControllerInstance = &LeadController{
			Log:     logger,
			Usecase: usecase,
			Limiter: limiter,
		}
	})
	return leadControllerInstance
}

// HandleInboundLead serves the CRM's new-lead webhook and triggers an
// outbound call for each accepted lead.
func (ctrl *LeadController) HandleInboundLead(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	eval, err := ctrl.Limiter.Evaluate(r.Context(), &ratelimiter.EvaluateInput{
		HookName: constvars.HookNameLead,
		NowUTC:   time.Now().UTC(),
	})
	if err != nil {
		ctrl.Log.Warn("LeadController.HandleInboundLead limiter unavailable, allowing request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else if !eval.Allowed {
		w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(eval.RetryAfterSecs))
		utils.BuildRelayErrorResponse(w, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, nil)
		return
	}

	var request requests.InboundLead
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Warn("LeadController.HandleInboundLead undecodable body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildRelayErrorResponse(w, constvars.StatusBadRequest, constvars.ErrClientMissingLeadData, nil)
		return
	}
	defer r.Body.Close()

	result, err := ctrl.Usecase.HandleInboundLead(r.Context(), &request)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode < constvars.StatusInternalServerError {
			utils.BuildRelayErrorResponse(w, customErr.StatusCode, customErr.ClientMessage, nil)
			return
		}

		details := err.Error()
		if customErr != nil {
			details = customErr.DevMessage
		}
		utils.BuildRelayErrorResponse(w, constvars.StatusInternalServerError, constvars.ErrClientVoiceCallFailed, details)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusOK)
	json.NewEncoder(w).Encode(result)
}
