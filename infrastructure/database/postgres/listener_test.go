package postgres

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNotification(t *testing.T) {
	t.Run("nil indica reconexão", func(t *testing.T) {
		signal, ok := decodeNotification(nil)
		require.True(t, ok)
		assert.True(t, signal.Reconnected)
		assert.Nil(t, signal.Change)
	})

	t.Run("payload válido", func(t *testing.T) {
		signal, ok := decodeNotification(&pq.Notification{
			Channel: "maestria_storage",
			Extra:   `{"key":"maestria_data","version":7,"origin":"inst-b"}`,
		})
		require.True(t, ok)
		require.NotNil(t, signal.Change)
		assert.Equal(t, "maestria_data", signal.Change.Key)
		assert.Equal(t, int64(7), signal.Change.Version)
		assert.Equal(t, "inst-b", signal.Change.Origin)
	})

	t.Run("payload inválido é descartado", func(t *testing.T) {
		_, ok := decodeNotification(&pq.Notification{Channel: "maestria_storage", Extra: "{"})
		assert.False(t, ok)
	})
}
