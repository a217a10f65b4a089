package bootstrap

import (
	"time"

	"permit-quotation-service/internal/pkg/clock"
	"permit-quotation-service/internal/pkg/config"
	"permit-quotation-service/internal/pkg/errs"
	"permit-quotation-service/internal/pkg/jwt"
	"permit-quotation-service/internal/pkg/responsetoken"
	"permit-quotation-service/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		fx.Annotate(
			NewResponseSigner,
			fx.As(new(commands.ResponseTokens)),
		),
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}
	return jwt.NewService(cfg.JWT.Secret, duration, clk), nil
}

func NewResponseSigner(cfg config.Config, clk clock.Clock) *responsetoken.Signer {
	return responsetoken.NewSigner(cfg.ResponseToken.Secret, cfg.ResponseToken.Validity, clk)
}
