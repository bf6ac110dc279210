package scheduler

import (
	"context"
	"fmt"

	"satei_admin_backend/internal/leads/classify"
	"satei_admin_backend/internal/leads/repository"
	"satei_admin_backend/platform/config"
	"satei_admin_backend/platform/logger"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Worker runs the background job server plus the periodic schedule that
// enqueues the daily category snapshot.
type Worker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
	repo      *repository.Repository
	engine    *classify.Engine
	snapshots *SnapshotStore
	log       *logger.Logger
}

func NewWorker(cfg *config.Config, pool *pgxpool.Pool, log *logger.Logger) (*Worker, error) {
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	snapshots, err := NewSnapshotStore(cfg.RedisURL, cfg.SnapshotTTL)
	if err != nil {
		return nil, err
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			"default": 1,
		},
	})

	// The cron spec runs in business-local time; the snapshot date must
	// match the date the engine would classify against.
	engine := classify.New(classify.Config{
		UTCOffset:       cfg.BusinessUTCOffset,
		UnpricedCutoff:  cfg.UnpricedCutoff,
		CallStartCutoff: cfg.CallStartCutoff,
	})

	periodic := asynq.NewScheduler(opt, &asynq.SchedulerOpts{
		Location: cfg.BusinessLocation(),
	})

	task, err := NewCategorySnapshotTask(CategorySnapshotPayload{})
	if err != nil {
		return nil, err
	}
	if _, err := periodic.Register(cfg.SnapshotCron, task, asynq.Queue("default")); err != nil {
		return nil, err
	}

	mux := asynq.NewServeMux()
	w := &Worker{
		server:    server,
		scheduler: periodic,
		mux:       mux,
		repo:      repository.New(pool),
		engine:    engine,
		snapshots: snapshots,
		log:       log,
	}

	mux.HandleFunc(TaskCategorySnapshot, w.handleCategorySnapshot)

	return w, nil
}

func (w *Worker) handleCategorySnapshot(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseCategorySnapshotPayload(task)
	if err != nil {
		return err
	}

	date := payload.Date
	if date == "" {
		date = w.engine.Today()
	}

	// Re-delivery after a crash must not overwrite an existing snapshot.
	if _, exists, err := w.snapshots.Load(ctx, date); err != nil {
		return err
	} else if exists {
		w.log.Info("snapshot already stored", "date", date)
		return nil
	}

	leads, err := w.repo.List(ctx)
	if err != nil {
		w.log.DatabaseError("leads.list", err)
		return err
	}

	records := make([]classify.Record, len(leads))
	for i, lead := range leads {
		records[i] = lead.Data
	}

	counts := w.engine.CountsAt(records, date)
	if err := w.snapshots.Save(ctx, date, counts); err != nil {
		return err
	}

	w.log.ClassificationRun(date, len(records), len(counts))
	w.log.SnapshotStored(date, counts[classify.CategoryAll])
	return nil
}

// Run starts the periodic schedule and the job server, blocking until the
// context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		if err := w.scheduler.Run(); err != nil {
			w.log.Error("periodic scheduler stopped", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		w.scheduler.Shutdown()
		w.server.Shutdown()
		_ = w.snapshots.Close()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
