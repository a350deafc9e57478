package contracts

import (
	"context"

	"callbridge-service/internal/pkg/dto/requests"
	"callbridge-service/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	// FindGroupedSlots fetches free calendar slots for the epoch window and
	// buckets them by weekday and period. Timestamps in seconds are promoted
	// to milliseconds before the upstream query.
	FindGroupedSlots(ctx context.Context, startTs, endTs int64) (*responses.GroupedSlots, error)
}

type BookingUsecase interface {
	// CreateBooking forwards a booking upstream and returns the raw upstream
	// body so the caller can pass it through.
	CreateBooking(ctx context.Context, request *requests.CreateBooking) ([]byte, error)
}

type LeadUsecase interface {
	HandleInboundLead(ctx context.Context, request *requests.InboundLead) (*responses.LeadResult, error)
}
