package controllers

import (
	"errors"
	"net/http"
	"sync"

	"callbridge-service/internal/app/contracts"
	"callbridge-service/internal/pkg/constvars"
	"callbridge-service/internal/pkg/dto/requests"
	"callbridge-service/internal/pkg/exceptions"
	"callbridge-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log     *zap.Logger
	Usecase contracts.BookingUsecase
}

var (
	bookingControllerInstance *BookingController
	onceBookingController     sync.Once
)

func NewBookingController(logger *zap.Logger, usecase contracts.BookingUsecase) *BookingController {
	onceBookingController.Do(func() {
		bookingControllerInstance = &BookingController{
			Log:     logger,
			Usecase: usecase,
		}
	})
	return bookingControllerInstance
}

// HandleCreateBooking forwards a booking upstream. On success the upstream
// body is passed through verbatim; failures use the flat error envelope.
func (ctrl *BookingController) HandleCreateBooking(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	var request requests.CreateBooking
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Warn("BookingController.HandleCreateBooking undecodable body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildRelayErrorResponse(w, constvars.StatusBadRequest, constvars.ErrClientMissingBookingFields, nil)
		return
	}
	defer r.Body.Close()

	body, err := ctrl.Usecase.CreateBooking(r.Context(), &request)
	if err != nil {
		ctrl.writeBookingError(w, err)
		return
	}

	utils.BuildRawJSONResponse(w, constvars.StatusOK, body)
}

func (ctrl *BookingController) writeBookingError(w http.ResponseWriter, err error) {
	var apiErr *exceptions.UpstreamAPIError
	if errors.As(err, &apiErr) {
		var details interface{} = string(apiErr.Body)
		if json.Valid(apiErr.Body) {
			details = json.RawMessage(apiErr.Body)
		}
		utils.BuildRelayErrorResponse(w, constvars.StatusInternalServerError, constvars.ErrClientBookingFailed, details)
		return
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		if customErr.StatusCode < constvars.StatusInternalServerError {
			utils.BuildRelayErrorResponse(w, customErr.StatusCode, customErr.ClientMessage, nil)
			return
		}
		utils.BuildRelayErrorResponse(w, constvars.StatusInternalServerError, constvars.ErrClientBookingRequestFailed, customErr.DevMessage)
		return
	}

	utils.BuildRelayErrorResponse(w, constvars.StatusInternalServerError, constvars.ErrClientBookingRequestFailed, err.Error())
}
