package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"callbridge-service/internal/app/config"
	"callbridge-service/internal/app/contracts"
	"callbridge-service/internal/pkg/constvars"
	"callbridge-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// HookRateLimiter caps inbound webhook traffic with a 60s window and a
// monthly quota per hook name. Either limit set to zero disables that limit.
type HookRateLimiter struct {
	redis        contracts.RedisRepository
	log          *zap.Logger
	rateLimit    int
	monthlyQuota int
}

func NewHookRateLimiter(redis contracts.RedisRepository, log *zap.Logger, cfg *config.InternalConfig) *HookRateLimiter {
	return &HookRateLimiter{
		redis:        redis,
		log:          log,
		rateLimit:    cfg.App.HookMaxRequestsPerMinute,
		monthlyQuota: cfg.App.HookMaxRequestsPerMonth,
	}
}

type EvaluateInput struct {
	HookName string
	NowUTC   time.Time
}

// EvaluateOutput carries the allow flag and, when denied, the seconds the
// caller should wait before retrying.
type EvaluateOutput struct {
	Allowed          bool
	RetryAfterSecs   int
	LimitedByMonthly bool
}

func (l *HookRateLimiter) Evaluate(ctx context.Context, in *EvaluateInput) (*EvaluateOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	l.log.Info("HookRateLimiter.Evaluate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("hook_name", in.HookName))

	if in.HookName == "" {
		return &EvaluateOutput{Allowed: false, RetryAfterSecs: 60}, nil
	}

	// Monthly quota key: HOOK:QUOTA:<YYYYMM>:<hook>
	monthKey := fmt.Sprintf("HOOK:QUOTA:%s:%s", in.NowUTC.Format("200601"), in.HookName)
	firstOfNextMonth := time.Date(in.NowUTC.Year(), in.NowUTC.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	ttlMonthly := time.Until(firstOfNextMonth)

	currentMonthlyStr, err := l.redis.Get(ctx, monthKey)
	if err != nil {
		return nil, exceptions.ErrRedisGetNoData(err, monthKey)
	}
	var currentMonthly int
	if currentMonthlyStr != "" {
		_ = json.Unmarshal([]byte(currentMonthlyStr), &currentMonthly)
	}

	if l.monthlyQuota > 0 && currentMonthly >= l.monthlyQuota {
		return &EvaluateOutput{Allowed: false, RetryAfterSecs: int(ttlMonthly.Seconds()) + 1, LimitedByMonthly: true}, nil
	}

	// 60s window key: HOOK:LIMIT:<YYYYMMDDHHMM>:<hook>
	minuteKey := fmt.Sprintf("HOOK:LIMIT:%s:%s", in.NowUTC.Format("200601021504"), in.HookName)
	nextMinute := in.NowUTC.Truncate(time.Minute).Add(time.Minute)
	ttlMinute := time.Until(nextMinute)

	currentMinuteStr, err := l.redis.Get(ctx, minuteKey)
	if err != nil {
		return nil, exceptions.ErrRedisGetNoData(err, minuteKey)
	}
	var currentMinute int
	if currentMinuteStr != "" {
		_ = json.Unmarshal([]byte(currentMinuteStr), &currentMinute)
	}

	if l.rateLimit > 0 && currentMinute >= l.rateLimit {
		return &EvaluateOutput{Allowed: false, RetryAfterSecs: int(ttlMinute.Seconds()) + 1, LimitedByMonthly: false}, nil
	}

	if currentMinute == 0 {
		_ = l.redis.Set(ctx, minuteKey, 1, ttlMinute+time.Second)
	} else {
		_ = l.redis.Increment(ctx, minuteKey)
	}

	if currentMonthly == 0 {
		_ = l.redis.Set(ctx, monthKey, 1, ttlMonthly+time.Minute)
	} else {
		_ = l.redis.Increment(ctx, monthKey)
	}

	return &EvaluateOutput{Allowed: true}, nil
}
