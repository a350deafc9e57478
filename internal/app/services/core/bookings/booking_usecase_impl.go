package bookings

import (
	"context"
	"sync"

	"callbridge-service/internal/app/config"
	"callbridge-service/internal/app/contracts"
	"callbridge-service/internal/pkg/constvars"
	"callbridge-service/internal/pkg/dto/requests"
	"callbridge-service/internal/pkg/exceptions"
	"callbridge-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	HighLevelClient contracts.HighLevelClient
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	highLevelClient contracts.HighLevelClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			HighLevelClient: highLevelClient,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return bookingUsecaseInstance
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("start_time", request.StartTime),
	)

	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Warn("bookingUsecase.CreateBooking missing required fields",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.BuildNewCustomError(
			err,
			constvars.StatusBadRequest,
			constvars.ErrClientMissingBookingFields,
			constvars.ErrDevValidationFailed,
		)
	}

	booking := &requests.HighLevelBooking{
		CalendarID:       uc.InternalConfig.HighLevel.CalendarID,
		SelectedSlot:     request.StartTime,
		SelectedTimezone: uc.InternalConfig.HighLevel.Timezone,
		Phone:            utils.NormalizeUSPhone(request.Phone),
		Email:            request.Email,
		Name:             request.Name,
	}

	// Normalization turns any input into "+<digits>", so the forwarded
	// payload is checked against the E.164 rule before it goes upstream.
	if err := utils.ValidateStruct(booking); err != nil {
		uc.Log.Warn("bookingUsecase.CreateBooking phone failed normalization",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	body, err := uc.HighLevelClient.CreateAppointment(ctx, booking)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking upstream booking failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return body, nil
}
