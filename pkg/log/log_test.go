package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("reuses a valid incoming id", func(t *testing.T) {
		incoming := uuid.New().String()

		ctx, id := WithCorrelationID(context.Background(), incoming)

		assert.Equal(t, incoming, id)
		assert.Equal(t, incoming, GetCorrelationID(ctx))
	})

	t.Run("generates an id when the incoming one is invalid", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "not-a-uuid")

		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.NotEqual(t, "not-a-uuid", id)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})

	t.Run("generates an id when none is given", func(t *testing.T) {
		_, id := WithCorrelationID(context.Background())
		assert.NotEmpty(t, id)
	})
}

func TestGetCorrelationID_Missing(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestIsRelevantField(t *testing.T) {
	assert.True(t, isRelevantField("correlation_id"))
	assert.True(t, isRelevantField("client_id"))
	assert.True(t, isRelevantField("payment_id"))
	assert.True(t, isRelevantField("run_id"))
	assert.False(t, isRelevantField("user_agent"))
	assert.False(t, isRelevantField("referer"))
}
