package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"callbridge-service/internal/app/contracts"
	"callbridge-service/internal/pkg/constvars"
	"callbridge-service/internal/pkg/dto/requests"
	"callbridge-service/internal/pkg/dto/responses"
	"callbridge-service/internal/pkg/exceptions"
	"callbridge-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log     *zap.Logger
	Usecase contracts.AvailabilityUsecase
}

var (
	availabilityControllerInstance *AvailabilityController
	onceAvailabilityController     sync.Once
)

func NewAvailabilityController(logger *zap.Logger, usecase contracts.AvailabilityUsecase) *AvailabilityController {
	onceAvailabilityController.Do(func() {
		availabilityControllerInstance = &AvailabilityController{
			Log:     logger,
			Usecase: usecase,
		}
	})
	return availabilityControllerInstance
}

// HandleFindSlots serves the voice platform's availability tool. The
// platform ignores HTTP status codes, so every outcome is a 200 and failures
// ride inside the tool-call result envelope.
func (ctrl *AvailabilityController) HandleFindSlots(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	var envelope requests.ToolCallEnvelope
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		ctrl.Log.Warn("AvailabilityController.HandleFindSlots undecodable envelope",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.writeToolCallError(w, constvars.ResponseUnknown, constvars.ErrClientInvalidSlotWindow, "")
		return
	}
	defer r.Body.Close()

	toolCall, ok := envelope.First()
	if !ok {
		ctrl.writeToolCallError(w, constvars.ResponseUnknown, constvars.ErrClientInvalidSlotWindow, "")
		return
	}

	startTs, startOK := toolCall.Function.Arguments.StartDate.Int64()
	endTs, endOK := toolCall.Function.Arguments.EndDate.Int64()
	if !startOK || !endOK {
		ctrl.writeToolCallError(w, constvars.ResponseUnknown, constvars.ErrClientInvalidSlotWindow, "")
		return
	}

	toolCallID := toolCall.ID
	if toolCallID == "" {
		toolCallID = constvars.ResponseUnknown
	}

	grouped, err := ctrl.Usecase.FindGroupedSlots(r.Context(), startTs, endTs)
	if err != nil {
		var apiErr *exceptions.UpstreamAPIError
		if errors.As(err, &apiErr) {
			ctrl.writeToolCallError(w, toolCallID, fmt.Sprintf(constvars.ErrClientUpstreamAPIError, string(apiErr.Body)), "")
			return
		}

		details := err.Error()
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			details = customErr.DevMessage
		}
		ctrl.writeToolCallError(w, toolCallID, constvars.ErrClientSlotFetchFailed, details)
		return
	}

	ctrl.writeToolCallResponse(w, responses.ToolCallResult{
		ToolCallID: toolCallID,
		Result:     grouped,
	})
}

func (ctrl *AvailabilityController) writeToolCallError(w http.ResponseWriter, toolCallID, message, details string) {
	ctrl.writeToolCallResponse(w, responses.ToolCallResult{
		ToolCallID: toolCallID,
		Error:      message,
		Details:    details,
	})
}

func (ctrl *AvailabilityController) writeToolCallResponse(w http.ResponseWriter, result responses.ToolCallResult) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusOK)
	json.NewEncoder(w).Encode(responses.ToolCallResponse{
		Results: []responses.ToolCallResult{result},
	})
}
