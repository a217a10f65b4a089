package components

import (
	"permit-quotation-service/internal/handler"
	"permit-quotation-service/internal/handler/api"
	"permit-quotation-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewQuotationHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, q *api.QuotationHandler, c *api.CatalogHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Quotation: q, Catalog: c}
		},
	),
	fx.Invoke(handler.NewRouter),
)
