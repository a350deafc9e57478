package contracts

import (
	"context"

	"callbridge-service/internal/pkg/dto/requests"
	"callbridge-service/internal/pkg/dto/responses"
)

// HighLevelClient talks to the HighLevel calendar REST API.
type HighLevelClient interface {
	FindAvailableSlots(ctx context.Context, startMillis, endMillis int64) (responses.HighLevelAvailability, error)
	CreateAppointment(ctx context.Context, booking *requests.HighLevelBooking) ([]byte, error)
}
