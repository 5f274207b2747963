package repository

import (
	"context"
	"sync"
	"time"

	"github.com/maestria/maestria-api/internal/domain"
)

const subscriberBuffer = 16

// MemoryStorage guarda as chaves em memória com as mesmas regras de versão do Postgres.
// Atende DATABASE_DRIVER=memory e os testes que envolvem mais de uma instância.
type MemoryStorage struct {
	mu          sync.Mutex
	entries     map[string]domain.StorageEntry
	subscribers []chan domain.ChangeSignal
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{entries: make(map[string]domain.StorageEntry)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) (*domain.StorageEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	entry.Value = append([]byte(nil), entry.Value...)
	return &entry, nil
}

func (m *MemoryStorage) Put(_ context.Context, key string, value []byte, origin string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.write(key, value, m.entries[key].Version+1, origin), nil
}

func (m *MemoryStorage) CompareAndSwap(_ context.Context, key string, value []byte, expected int64, origin string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.entries[key].Version != expected {
		return 0, domain.ErrStaleVersion
	}
	return m.write(key, value, expected+1, origin), nil
}

func (m *MemoryStorage) Delete(_ context.Context, key string, origin string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	m.publish(domain.StorageChange{Key: key, Origin: origin})
	return nil
}

// Subscribe entrega as mudanças gravadas a partir de agora até o contexto ser cancelado.
func (m *MemoryStorage) Subscribe(ctx context.Context) (<-chan domain.ChangeSignal, error) {
	ch := make(chan domain.ChangeSignal, subscriberBuffer)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, sub := range m.subscribers {
			if sub == ch {
				m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
				break
			}
		}
		close(ch)
	}()

	return ch, nil
}

func (m *MemoryStorage) write(key string, value []byte, version int64, origin string) int64 {
	m.entries[key] = domain.StorageEntry{
		Key:       key,
		Value:     append([]byte(nil), value...),
		Version:   version,
		Origin:    origin,
		UpdatedAt: time.Now(),
	}
	m.publish(domain.StorageChange{Key: key, Version: version, Origin: origin})
	return version
}

// publish não bloqueia a gravação. Com o buffer cheio, o sinal mais antigo
// dá lugar a um Reconnected, que força o assinante a recarregar tudo.
func (m *MemoryStorage) publish(change domain.StorageChange) {
	for _, sub := range m.subscribers {
		select {
		case sub <- domain.ChangeSignal{Change: &change}:
			continue
		default:
		}

		select {
		case <-sub:
		default:
		}
		select {
		case sub <- domain.ChangeSignal{Reconnected: true}:
		default:
		}
	}
}
