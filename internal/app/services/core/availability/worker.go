package availability

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"valoredash-service/internal/app/config"
	"valoredash-service/internal/app/contracts"
	"valoredash-service/internal/pkg/constvars"
)

// Worker periodically re-warms the availability cache for every active
// agenda so dashboard reads stay hot. A redis leader lock keeps a single
// instance doing the work across the deployment.
type Worker struct {
	log                 *zap.Logger
	cfg                 *config.InternalConfig
	locker              contracts.LockerService
	agendaRepo          contracts.AgendaRepository
	availabilityUsecase contracts.AvailabilityUsecase
	cron                *cron.Cron
	runCtx              context.Context
	cancel              context.CancelFunc
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	locker contracts.LockerService,
	agendaRepo contracts.AgendaRepository,
	availabilityUsecase contracts.AvailabilityUsecase,
) *Worker {
	return &Worker{
		log:                 log,
		cfg:                 cfg,
		locker:              locker,
		agendaRepo:          agendaRepo,
		availabilityUsecase: availabilityUsecase,
	}
}

// Start schedules the periodic warm pass.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.WarmWorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("availability.worker: invalid cron spec, falling back to @hourly", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@hourly", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight work and waits for running jobs to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := 2 * time.Minute
	acquired, lockValue, err := w.locker.TryLock(ctx, constvars.AvailabilityWarmLeaderKey, ttl)
	if err != nil {
		w.log.Warn("availability.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("availability.worker: another instance holds the leader lock")
		return
	}
	defer w.locker.Unlock(ctx, constvars.AvailabilityWarmLeaderKey, lockValue)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(ctx, constvars.AvailabilityWarmLeaderKey, lockValue, ttl); err != nil {
					w.log.Warn("availability.worker: failed to refresh leader lock", zap.Error(err))
				}
			}
		}
	}()

	agendas, err := w.agendaRepo.FindAll(ctx)
	if err != nil {
		w.log.Warn("availability.worker: agenda listing failed", zap.Error(err))
		return
	}

	days := w.cfg.App.AvailabilityWindowDays
	for _, agenda := range agendas {
		if !agenda.Active {
			continue
		}
		if err := ctx.Err(); err != nil {
			return
		}
		if err := w.availabilityUsecase.WarmAgendaWindow(ctx, agenda.ID, days); err != nil {
			w.log.Warn("availability.worker: warm pass failed for agenda",
				zap.String(constvars.LoggingAgendaIDKey, agenda.ID),
				zap.Error(err),
			)
		}
	}
	w.log.Info("availability.worker: warm pass finished", zap.Int("agendas", len(agendas)))
}
