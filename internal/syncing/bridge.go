package syncing

import (
	"context"
	"sync"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Subscriber entrega os sinais de mudança do armazenamento.
type Subscriber interface {
	Subscribe(ctx context.Context) (<-chan domain.ChangeSignal, error)
}

// Reloader é a parte do espaço de trabalho usada pela ponte.
type Reloader interface {
	Reload(ctx context.Context) int64
	ReloadIfNewer(ctx context.Context, version int64) bool
}

type Status struct {
	Running     bool  `json:"running"`
	Received    int64 `json:"received"`
	Reloads     int64 `json:"reloads"`
	Reconnects  int64 `json:"reconnects"`
	LastVersion int64 `json:"lastVersion"`
}

// Bridge recarrega o espaço de trabalho quando outra instância grava o snapshot.
type Bridge struct {
	subscriber  Subscriber
	workspace   Reloader
	snapshotKey string
	origin      string

	mu     sync.Mutex
	status Status
	done   chan struct{}
}

func NewBridge(subscriber Subscriber, workspace Reloader, snapshotKey, origin string) *Bridge {
	return &Bridge{
		subscriber:  subscriber,
		workspace:   workspace,
		snapshotKey: snapshotKey,
		origin:      origin,
	}
}

// Start assina as notificações e processa os sinais em segundo plano até ctx ser cancelado.
// Logo após assinar, recarrega o espaço de trabalho para não perder gravações
// feitas entre a carga inicial e a assinatura.
func (b *Bridge) Start(ctx context.Context) error {
	signals, err := b.subscriber.Subscribe(ctx)
	if err != nil {
		return err
	}

	version := b.workspace.Reload(ctx)
	logrus.WithField("version", version).Debug("Espaço de trabalho recarregado após a assinatura")

	b.mu.Lock()
	b.status.Running = true
	b.done = make(chan struct{})
	b.mu.Unlock()

	go func() {
		defer close(b.done)
		for signal := range signals {
			b.handle(ctx, signal)
		}

		b.mu.Lock()
		b.status.Running = false
		b.mu.Unlock()
		logrus.Info("Ponte de sincronização encerrada")
	}()

	logrus.Infof("Ponte de sincronização iniciada para a chave %s", b.snapshotKey)
	return nil
}

// Wait bloqueia até o canal de sinais ser fechado.
func (b *Bridge) Wait() {
	b.mu.Lock()
	done := b.done
	b.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (b *Bridge) GetStatus() Status {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.status
}

func (b *Bridge) handle(ctx context.Context, signal domain.ChangeSignal) {
	b.mu.Lock()
	b.status.Received++
	b.mu.Unlock()

	if signal.Reconnected {
		version := b.workspace.Reload(ctx)
		logrus.WithField("version", version).Info("Reconexão detectada, espaço de trabalho recarregado")
		b.record(version, true)
		return
	}

	change := signal.Change
	if change == nil || change.Key != b.snapshotKey || change.Origin == b.origin {
		return
	}

	if b.workspace.ReloadIfNewer(ctx, change.Version) {
		logrus.WithFields(logrus.Fields{
			"version": change.Version,
			"origin":  change.Origin,
		}).Info("Alteração externa recebida, espaço de trabalho recarregado")
		b.record(change.Version, false)
	}
}

func (b *Bridge) record(version int64, reconnect bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.status.Reloads++
	b.status.LastVersion = version
	if reconnect {
		b.status.Reconnects++
	}
}
