package leads

import (
	"context"
	"sync"
	"time"

	"callbridge-service/internal/app/config"
	"callbridge-service/internal/app/contracts"
	"callbridge-service/internal/pkg/constvars"
	"callbridge-service/internal/pkg/dto/requests"
	"callbridge-service/internal/pkg/dto/responses"
	"callbridge-service/internal/pkg/exceptions"
	"callbridge-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const leadDedupeKeyPrefix = "LEAD:DEDUPE:"

type leadUsecase struct {
	VoiceDialer     contracts.VoiceDialer
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	leadUsecaseInstance contracts.LeadUsecase
	onceLeadUsecase     sync.Once
)

func NewLeadUsecase(
	voiceDialer contracts.VoiceDialer,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.LeadUsecase {
	onceLeadUsecase.Do(func() {
		leadUsecaseInstance = &leadUsecase{
			VoiceDialer:     voiceDialer,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return leadUsecaseInstance
}

func (uc *leadUsecase) HandleInboundLead(ctx context.Context, request *requests.InboundLead) (*responses.LeadResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("leadUsecase.HandleInboundLead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Warn("leadUsecase.HandleInboundLead missing lead data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.BuildNewCustomError(
			err,
			constvars.StatusBadRequest,
			constvars.ErrClientMissingLeadData,
			constvars.ErrDevValidationFailed,
		)
	}

	name := request.Name
	if name == "" {
		name = constvars.LeadFallbackName
	}
	email := request.Email
	if email == "" {
		email = constvars.LeadFallbackEmail
	}

	call := &requests.OutboundCall{
		AgentID: uc.InternalConfig.Voice.AgentID,
		Phone:   utils.NormalizeUSPhone(request.Phone),
		Metadata: requests.CallMetadata{
			Name:   name,
			Email:  email,
			Source: constvars.LeadSourceFacebook,
		},
	}

	// Normalization turns any input into "+<digits>", so the call payload
	// is checked against the E.164 rule before the dialer ever sees it.
	if err := utils.ValidateStruct(call); err != nil {
		uc.Log.Warn("leadUsecase.HandleInboundLead phone failed normalization",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	if duplicate := uc.isDuplicateLead(ctx, call.Phone); duplicate {
		uc.Log.Info("leadUsecase.HandleInboundLead duplicate lead ignored",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return &responses.LeadResult{Status: constvars.StatusDuplicateLead}, nil
	}

	body, err := uc.VoiceDialer.Dial(ctx, call)
	if err != nil {
		uc.Log.Error("leadUsecase.HandleInboundLead dial failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("leadUsecase.HandleInboundLead call triggered",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.LeadResult{
		Status:       constvars.StatusVoiceCallTriggered,
		CallResponse: body,
	}, nil
}

// isDuplicateLead claims the phone's dedupe key. A redis failure never
// blocks the call; losing the odd duplicate beats dropping a real lead.
func (uc *leadUsecase) isDuplicateLead(ctx context.Context, phone string) bool {
	ttlMinutes := uc.InternalConfig.App.LeadDedupeTTLInMinutes
	if ttlMinutes <= 0 {
		return false
	}

	acquired, err := uc.RedisRepository.TrySetNX(
		ctx,
		leadDedupeKeyPrefix+phone,
		time.Now().UTC().Format(time.RFC3339),
		time.Duration(ttlMinutes)*time.Minute,
	)
	if err != nil {
		uc.Log.Warn("leadUsecase.isDuplicateLead redis unavailable, skipping dedupe",
			zap.Error(err),
		)
		return false
	}
	return !acquired
}
