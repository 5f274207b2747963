package postgres

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/maestria/maestria-api/internal/config"
	"github.com/maestria/maestria-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Intervalo sem notificações após o qual a conexão é verificada.
const listenerPingInterval = 90 * time.Second

// Listener assina o canal de notificações do armazenamento via LISTEN/NOTIFY.
type Listener struct {
	listener *pq.Listener
	channel  string
}

func NewListener(db config.Database, sync config.Sync) *Listener {
	callback := func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnected:
			logrus.Infof("Listener conectado ao canal %s", sync.Channel)
		case pq.ListenerEventDisconnected:
			logrus.WithError(err).Warn("Listener desconectado, aguardando reconexão")
		case pq.ListenerEventReconnected:
			logrus.Info("Listener reconectado")
		case pq.ListenerEventConnectionAttemptFailed:
			logrus.WithError(err).Warn("Falha ao reconectar listener")
		}
	}

	return &Listener{
		listener: pq.NewListener(db.DSN, sync.MinReconnectInterval, sync.MaxReconnectInterval, callback),
		channel:  sync.Channel,
	}
}

// Subscribe inicia o LISTEN e entrega os sinais até o contexto ser cancelado.
// Um sinal com Reconnected indica que notificações podem ter sido perdidas.
func (l *Listener) Subscribe(ctx context.Context) (<-chan domain.ChangeSignal, error) {
	if err := l.listener.Listen(l.channel); err != nil {
		return nil, err
	}

	out := make(chan domain.ChangeSignal)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case n := <-l.listener.Notify:
				signal, ok := decodeNotification(n)
				if !ok {
					continue
				}
				select {
				case out <- signal:
				case <-ctx.Done():
					return
				}
			case <-time.After(listenerPingInterval):
				go func() {
					if err := l.listener.Ping(); err != nil {
						logrus.WithError(err).Warn("Ping do listener falhou")
					}
				}()
			}
		}
	}()

	return out, nil
}

func (l *Listener) Close() error {
	return l.listener.Close()
}

// pq entrega nil em Notify depois de uma reconexão.
func decodeNotification(n *pq.Notification) (domain.ChangeSignal, bool) {
	if n == nil {
		return domain.ChangeSignal{Reconnected: true}, true
	}

	var change domain.StorageChange
	if err := jsoniter.UnmarshalFromString(n.Extra, &change); err != nil {
		logrus.WithError(err).Warnf("Notificação ignorada no canal %s: payload inválido", n.Channel)
		return domain.ChangeSignal{}, false
	}

	return domain.ChangeSignal{Change: &change}, true
}
