package availability

import (
	"context"
	"sort"
	"sync"

	"callbridge-service/internal/app/contracts"
	"callbridge-service/internal/pkg/constvars"
	"callbridge-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	HighLevelClient contracts.HighLevelClient
	Log             *zap.Logger
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(
	highLevelClient contracts.HighLevelClient,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		availabilityUsecaseInstance = &availabilityUsecase{
			HighLevelClient: highLevelClient,
			Log:             logger,
		}
	})
	return availabilityUsecaseInstance
}

// epochMillisThreshold separates second-precision epochs from millisecond
// ones. Anything below it is treated as seconds and promoted.
const epochMillisThreshold = int64(1e11)

func normalizeEpochMillis(ts int64) int64 {
	if ts < epochMillisThreshold {
		return ts * 1000
	}
	return ts
}

func (uc *availabilityUsecase) FindGroupedSlots(ctx context.Context, startTs, endTs int64) (*responses.GroupedSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.FindGroupedSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("start_ts", startTs),
		zap.Int64("end_ts", endTs),
	)

	startMillis := normalizeEpochMillis(startTs)
	endMillis := normalizeEpochMillis(endTs)

	slotData, err := uc.HighLevelClient.FindAvailableSlots(ctx, startMillis, endMillis)
	if err != nil {
		uc.Log.Error("availabilityUsecase.FindGroupedSlots error fetching slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// The upstream body is a JSON object keyed by date, so its iteration
	// order is unspecified. Sort the dates to keep day order deterministic.
	dates := make([]string, 0, len(slotData))
	for date := range slotData {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	allSlots := make([]string, 0)
	for _, date := range dates {
		allSlots = append(allSlots, slotData[date].Slots...)
	}

	grouped := GroupSlots(allSlots)
	if dropped := len(allSlots) - len(grouped.Fallback); dropped > 0 {
		uc.Log.Debug("availabilityUsecase.FindGroupedSlots dropped unparseable slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("dropped", dropped),
		)
	}
	return grouped, nil
}
