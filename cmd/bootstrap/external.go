package bootstrap

import (
	"log/slog"
	"net/http"

	"permit-quotation-service/internal/domain/quotation"
	"permit-quotation-service/internal/infra/document"
	"permit-quotation-service/internal/infra/estimate"
	"permit-quotation-service/internal/infra/export"
	"permit-quotation-service/internal/infra/notify"
	"permit-quotation-service/internal/pkg/clock"
	"permit-quotation-service/internal/pkg/config"
	"permit-quotation-service/internal/usecase/commands"
	"permit-quotation-service/internal/usecase/queries"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// ExternalModule wires the outbound adapters. Each has a local variant
// selected by config so the service runs without third-party accounts.
var ExternalModule = fx.Module("external",
	fx.Provide(
		NewEstimateProvider,
		NewNotificationSender,
		fx.Annotate(
			NewDocumentRenderer,
			fx.As(new(commands.DocumentRenderer)),
		),
		fx.Annotate(
			export.NewXLSXWriter,
			fx.As(new(queries.QuotationSheetWriter)),
		),
		NewPricing,
		NewQuotationSettings,
	),
)

func NewEstimateProvider(cfg config.Config, clk clock.Clock) commands.EstimateProvider {
	ec := cfg.Estimate
	if ec.Mode == config.EstimateModeMock {
		slog.Warn("estimate provider running in mock mode")
		return estimate.NewMockProvider()
	}

	httpClient := &http.Client{Timeout: ec.Timeout}
	session := estimate.NewSession(estimate.Credentials{
		TokenURL:     ec.TokenURL,
		ClientID:     ec.ClientID,
		ClientSecret: ec.ClientSecret,
		RefreshToken: ec.RefreshToken,
	}, httpClient, clk)
	limiter := rate.NewLimiter(rate.Limit(ec.RatePerSec), ec.RateBurst)
	return estimate.NewClient(ec.BaseURL, httpClient, session, limiter)
}

func NewNotificationSender(cfg config.Config) commands.NotificationSender {
	if cfg.SMTP.Mode == config.SMTPModeLog {
		slog.Warn("notification sender running in log mode")
		return notify.NewLogSender(cfg.SMTP.From)
	}
	return notify.NewSMTPSender(cfg.SMTP)
}

func NewDocumentRenderer(cfg config.Config) (*document.Renderer, error) {
	var printer document.PDFPrinter
	if cfg.Document.Mode == config.DocumentModePDF {
		printer = document.NewChromePrinter(cfg.Document.Timeout)
	}
	return document.NewRenderer(cfg.Document, printer)
}

func NewPricing(cfg config.Config) (quotation.Pricing, error) {
	price, err := cfg.Estimate.FallbackPrice()
	if err != nil {
		return quotation.Pricing{}, err
	}
	p := quotation.Pricing{FallbackPrice: price}
	if cfg.Estimate.CustomItemRef != "" {
		ref := cfg.Estimate.CustomItemRef
		p.FallbackItemRef = &ref
	}
	return p, nil
}

func NewQuotationSettings(cfg config.Config) commands.QuotationSettings {
	return commands.QuotationSettings{
		ResponseBaseURL: cfg.ResponseToken.LinkBaseURL,
		StaffInbox:      cfg.SMTP.StaffInbox,
	}
}
