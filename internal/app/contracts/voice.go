package contracts

import (
	"context"

	"callbridge-service/internal/pkg/dto/requests"
)

// VoiceDialer starts an outbound call on the voice platform.
type VoiceDialer interface {
	Dial(ctx context.Context, call *requests.OutboundCall) ([]byte, error)
}
