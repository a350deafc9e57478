package utils

import (
	"callbridge-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

// GenerateRequestID returns a prefixed opaque ID for request correlation.
func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}
