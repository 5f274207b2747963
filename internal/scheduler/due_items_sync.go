package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/maestria/maestria-api/internal/config"
	"github.com/maestria/maestria-api/internal/usecases/scheduling"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=due_items_sync.go -destination=mocks/due_items_sync_mock.go -package=mocks

// DueItemsProcessor aplica a rotina de vencimentos para a data informada (AAAA-MM-DD).
type DueItemsProcessor interface {
	ProcessDueItems(ctx context.Context, today string) (scheduling.DueItemsResult, error)
}

// DueItemsSyncService agenda a rotina diária de vencimentos: agendamentos e lançamentos
// pendentes vencidos passam a overdue e agendamentos com pagamento automático são quitados.
type DueItemsSyncService struct {
	scheduler   *gocron.Scheduler
	config      config.DueItemsSync
	processor   DueItemsProcessor
	now         func() time.Time
	baseCtx     context.Context
	syncRunning bool
	syncMutex   sync.Mutex

	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          scheduling.DueItemsResult
	lastError           string
}

func NewDueItemsSyncService(processor DueItemsProcessor, cfg config.DueItemsSync) *DueItemsSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"sync_enabled":  cfg.Enabled,
	}).Info("Configuração do agendador de vencimentos carregada")

	return &DueItemsSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		processor: processor,
		now:       time.Now,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *DueItemsSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.Enabled {
		logrus.Info("Rotina de vencimentos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da rotina de vencimentos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.processDueItems(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar rotina de vencimentos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da rotina de vencimentos")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa a rotina de forma síncrona. Retorna false quando já havia uma execução em andamento.
func (s *DueItemsSyncService) RunNow(ctx context.Context) (scheduling.DueItemsResult, bool, error) {
	if !s.acquire() {
		logrus.Info("Rotina de vencimentos já em andamento, ignorando")
		return scheduling.DueItemsResult{}, false, nil
	}
	defer s.release()

	result, err := s.run(ctx)
	return result, true, err
}

// TriggerManualSync dispara a rotina em segundo plano.
func (s *DueItemsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Rotina de vencimentos já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando execução manual da rotina de vencimentos")
	go s.processDueItems(s.baseCtx)
}

func (s *DueItemsSyncService) processDueItems(ctx context.Context) {
	if !s.acquire() {
		logrus.Info("Rotina de vencimentos já em andamento, ignorando")
		return
	}
	defer s.release()

	_, _ = s.run(ctx)
}

func (s *DueItemsSyncService) run(ctx context.Context) (scheduling.DueItemsResult, error) {
	startTime := s.now()
	today := startTime.Format(time.DateOnly)

	s.syncMutex.Lock()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	logrus.WithField("today", today).Info("Iniciando rotina de vencimentos")

	result, err := s.processor.ProcessDueItems(ctx, today)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao processar vencimentos")
		return result, err
	}

	s.lastError = ""
	s.lastResult = result
	s.lastSyncCompletedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"duration":             s.lastSyncCompletedAt.Sub(startTime).String(),
		"overdue_items":        result.OverdueItems,
		"auto_paid":            result.AutoPaid,
		"overdue_transactions": result.OverdueTransactions,
	}).Info("Rotina de vencimentos concluída")

	return result, nil
}

func (s *DueItemsSyncService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	return true
}

func (s *DueItemsSyncService) release() {
	s.syncMutex.Lock()
	s.syncRunning = false
	s.syncMutex.Unlock()
}

// GetStatus retorna o status atual da rotina
func (s *DueItemsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
		"last_error":             s.lastError,
	}
}
