package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *mockWriter) Close() error {
	return m.Called().Error(0)
}

func TestPublisher_Publish(t *testing.T) {
	vendorID := kernel.NewUUID()
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	event := order.ChangedEvent{
		OrderID:       kernel.NewUUID(),
		Reason:        "vendor_assigned",
		Status:        order.PickupAssigned,
		PaymentStatus: order.Unpaid,
		VendorID:      &vendorID,
		At:            at,
	}

	t.Run("writes one keyed json message per event", func(t *testing.T) {
		w := new(mockWriter)
		var written []kafka.Message
		w.On("WriteMessages", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { written = args.Get(1).([]kafka.Message) }).
			Return(nil).Once()

		err := newPublisher(w).Publish(context.Background(), event)

		require.NoError(t, err)
		require.Len(t, written, 1)
		assert.Equal(t, event.OrderID.String(), string(written[0].Key))
		assert.Equal(t, at, written[0].Time)

		var body map[string]any
		require.NoError(t, json.Unmarshal(written[0].Value, &body))
		assert.Equal(t, "order.changed", body["event"])
		assert.Equal(t, "vendor_assigned", body["reason"])
		assert.Equal(t, "pickup_assigned", body["status"])
		assert.Equal(t, "unpaid", body["paymentStatus"])
		assert.Equal(t, vendorID.String(), body["vendorId"])
		assert.Equal(t, false, body["hasIssue"])
	})

	t.Run("no events means no write", func(t *testing.T) {
		w := new(mockWriter)

		require.NoError(t, newPublisher(w).Publish(context.Background()))
		w.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
	})

	t.Run("writer failure is returned", func(t *testing.T) {
		w := new(mockWriter)
		w.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("leader not available"))

		err := newPublisher(w).Publish(context.Background(), event)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "leader not available")
	})
}
