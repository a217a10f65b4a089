package scheduler

import (
	"context"
	"log/slog"
	"time"

	"permit-quotation-service/internal/pkg/config"
	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

type reconcileRunner interface {
	ReconcileUnsynced(ctx context.Context, limit int) (*commands.ReconcileReport, error)
}

// Reconciler periodically retries estimate mirrors that failed to sync.
// Overlapping runs are skipped.
type Reconciler struct {
	cron      *cron.Cron
	runner    reconcileRunner
	batchSize int
	timeout   time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

func NewReconciler(cfg config.ReconcileConfig, runner reconcileRunner) (*Reconciler, error) {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Reconciler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cron.DefaultLogger),
			cron.SkipIfStillRunning(cron.DefaultLogger),
		)),
		runner:    runner,
		batchSize: cfg.BatchSize,
		timeout:   10 * time.Minute,
		ctx:       ctx,
		cancel:    cancel,
	}
	if _, err := r.cron.AddFunc(cfg.Schedule, r.Run); err != nil {
		cancel()
		return nil, errs.Wrapf(err, "invalid reconcile schedule %q", cfg.Schedule)
	}
	return r, nil
}

// Run executes one reconciliation pass.
func (r *Reconciler) Run() {
	ctx, cancel := context.WithTimeout(r.ctx, r.timeout)
	defer cancel()

	start := time.Now()
	report, err := r.runner.ReconcileUnsynced(ctx, r.batchSize)
	if err != nil {
		slog.Error("estimate reconciliation failed", "error", err)
		if report == nil {
			return
		}
	}
	if report.Attempted == 0 {
		slog.Debug("estimate reconciliation found nothing to sync")
		return
	}
	slog.Info("estimate reconciliation finished",
		"attempted", report.Attempted,
		"synced", report.Synced,
		"failed", report.Failed,
		"duration", time.Since(start))
}

func (r *Reconciler) Start() {
	r.cron.Start()
	slog.Info("estimate reconciler started", "entries", len(r.cron.Entries()))
}

// Stop cancels an in-flight run and waits for it to return or ctx to end.
func (r *Reconciler) Stop(ctx context.Context) error {
	r.cancel()
	select {
	case <-r.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
