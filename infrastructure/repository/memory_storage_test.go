package repository

import (
	"context"
	"testing"
	"time"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_CompareAndSwap(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	version, err := storage.CompareAndSwap(ctx, "maestria_data", []byte(`{}`), 0, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	_, err = storage.CompareAndSwap(ctx, "maestria_data", []byte(`{"x":1}`), 0, "b")
	assert.ErrorIs(t, err, domain.ErrStaleVersion)

	version, err = storage.CompareAndSwap(ctx, "maestria_data", []byte(`{"x":2}`), 1, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	entry, err := storage.Get(ctx, "maestria_data")
	require.NoError(t, err)
	assert.Equal(t, `{"x":2}`, string(entry.Value))
	assert.Equal(t, "b", entry.Origin)
}

func TestMemoryStorage_PutAndDelete(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	entry, err := storage.Get(ctx, "maestria_lang")
	require.NoError(t, err)
	assert.Nil(t, entry)

	_, err = storage.Put(ctx, "maestria_lang", []byte(`"pt"`), "a")
	require.NoError(t, err)
	version, err := storage.Put(ctx, "maestria_lang", []byte(`"en"`), "a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	require.NoError(t, storage.Delete(ctx, "maestria_lang", "a"))
	entry, err = storage.Get(ctx, "maestria_lang")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestMemoryStorage_Subscribe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	storage := NewMemoryStorage()

	signals, err := storage.Subscribe(ctx)
	require.NoError(t, err)

	_, err = storage.Put(ctx, "maestria_data", []byte(`{}`), "inst-a")
	require.NoError(t, err)

	select {
	case signal := <-signals:
		require.NotNil(t, signal.Change)
		assert.Equal(t, "maestria_data", signal.Change.Key)
		assert.Equal(t, int64(1), signal.Change.Version)
		assert.Equal(t, "inst-a", signal.Change.Origin)
	case <-time.After(time.Second):
		t.Fatal("nenhum sinal recebido")
	}
}

func TestMemoryStorage_SlowSubscriberGetsReloadSignal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	storage := NewMemoryStorage()

	signals, err := storage.Subscribe(ctx)
	require.NoError(t, err)

	for i := 0; i < subscriberBuffer+5; i++ {
		_, err = storage.Put(ctx, "maestria_data", []byte(`{}`), "inst-b")
		require.NoError(t, err)
	}

	require.Len(t, signals, subscriberBuffer)

	reconnected := false
	for i := 0; i < subscriberBuffer; i++ {
		signal := <-signals
		if signal.Reconnected {
			reconnected = true
			assert.Nil(t, signal.Change)
		}
	}
	assert.True(t, reconnected, "nenhum pedido de recarga após o buffer encher")
}
