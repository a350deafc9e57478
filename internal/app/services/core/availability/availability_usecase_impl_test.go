package availability

import (
	"context"
	"errors"
	"testing"

	"callbridge-service/internal/pkg/dto/requests"
	"callbridge-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubHighLevelClient struct {
	availability responses.HighLevelAvailability
	err          error

	gotStart int64
	gotEnd   int64
}

func (s *stubHighLevelClient) FindAvailableSlots(_ context.Context, startMillis, endMillis int64) (responses.HighLevelAvailability, error) {
	s.gotStart = startMillis
	s.gotEnd = endMillis
	return s.availability, s.err
}

func (s *stubHighLevelClient) CreateAppointment(_ context.Context, _ *requests.HighLevelBooking) ([]byte, error) {
	return nil, errors.New("not implemented")
}

func newTestUsecase(client *stubHighLevelClient) *availabilityUsecase {
	return &availabilityUsecase{
		HighLevelClient: client,
		Log:             zap.NewNop(),
	}
}

func TestNormalizeEpochMillis(t *testing.T) {
	assert.Equal(t, int64(1718020800000), normalizeEpochMillis(1718020800))
	assert.Equal(t, int64(1718020800000), normalizeEpochMillis(1718020800000))
	assert.Equal(t, int64(0), normalizeEpochMillis(0))
}

func TestAvailabilityUsecase_FindGroupedSlots(t *testing.T) {
	t.Run("promotes second-precision epochs before the upstream query", func(t *testing.T) {
		client := &stubHighLevelClient{availability: responses.HighLevelAvailability{}}
		uc := newTestUsecase(client)

		_, err := uc.FindGroupedSlots(context.Background(), 1718020800, 1718625600000)

		assert.NoError(t, err)
		assert.Equal(t, int64(1718020800000), client.gotStart)
		assert.Equal(t, int64(1718625600000), client.gotEnd)
	})

	t.Run("flattens days in date order and groups the result", func(t *testing.T) {
		client := &stubHighLevelClient{availability: responses.HighLevelAvailability{
			"2024-06-11": {Slots: []string{"2024-06-11T14:00:00-04:00"}},
			"2024-06-10": {Slots: []string{"2024-06-10T09:00:00-04:00"}},
		}}
		uc := newTestUsecase(client)

		result, err := uc.FindGroupedSlots(context.Background(), 1718020800000, 1718625600000)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Monday", "Tuesday"}, result.Days)
		assert.Equal(t, []string{"2024-06-10T09:00:00-04:00", "2024-06-11T14:00:00-04:00"}, result.Fallback)
	})

	t.Run("returns the client error untouched", func(t *testing.T) {
		upstreamErr := errors.New("connection refused")
		client := &stubHighLevelClient{err: upstreamErr}
		uc := newTestUsecase(client)

		result, err := uc.FindGroupedSlots(context.Background(), 1718020800000, 1718625600000)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, upstreamErr)
	})

	t.Run("empty upstream map yields an empty grouping", func(t *testing.T) {
		client := &stubHighLevelClient{availability: responses.HighLevelAvailability{}}
		uc := newTestUsecase(client)

		result, err := uc.FindGroupedSlots(context.Background(), 1718020800000, 1718625600000)

		assert.NoError(t, err)
		assert.Empty(t, result.Days)
		assert.Empty(t, result.Fallback)
	})
}
