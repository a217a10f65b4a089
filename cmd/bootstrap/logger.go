package bootstrap

import (
	"context"
	"log/slog"

	"permit-quotation-service/internal/pkg/config"
	"permit-quotation-service/internal/pkg/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(lc fx.Lifecycle, cfg config.Config) *slog.Logger {
	format := logging.FormatText
	if gin.Mode() == gin.ReleaseMode {
		format = logging.FormatJSON
	}
	logger, closer := logging.New(cfg.Log, format)
	slog.SetDefault(logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return closer.Close()
		},
	})
	return logger
}
