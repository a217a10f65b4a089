package bootstrap

import (
	"context"
	"log/slog"

	"permit-quotation-service/internal/infra/scheduler"
	"permit-quotation-service/internal/pkg/config"
	"permit-quotation-service/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartReconciler),
)

func StartReconciler(lc fx.Lifecycle, cfg config.Config, cmds commands.QuotationCommands) error {
	if !cfg.Reconcile.Enabled {
		slog.Info("estimate reconciler disabled")
		return nil
	}
	r, err := scheduler.NewReconciler(cfg.Reconcile, cmds)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			r.Start()
			return nil
		},
		OnStop: r.Stop,
	})
	return nil
}
