package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"permit-quotation-service/internal/domain/user"
	"permit-quotation-service/internal/handler/api"
	"permit-quotation-service/internal/handler/middleware"
	"permit-quotation-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Quotation *api.QuotationHandler
	Catalog   *api.CatalogHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAdmin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		catalog := apiGroup.Group("/catalog")
		{
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "/agencies", Handler: h.Catalog.ListAgencies},
				{Method: http.MethodGet, Path: "/permit-types/lookup", Handler: h.Catalog.FindPermitType},
			})

			admin := catalog.Group("")
			admin.Use(authMiddleware.RequireAuth())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/agencies", Handler: h.Catalog.CreateAgency, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodDelete, Path: "/agencies/:id", Handler: h.Catalog.DeleteAgency, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodPost, Path: "/agencies/:id/permit-types", Handler: h.Catalog.CreatePermitType, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodPut, Path: "/permit-types/:id", Handler: h.Catalog.UpdatePermitType, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodDelete, Path: "/permit-types/:id", Handler: h.Catalog.DeletePermitType, Mw: []gin.HandlerFunc{requireAdmin}},
			})
		}

		quotations := apiGroup.Group("/quotations")
		{
			addRoutes(quotations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Quotation.Create},
				{Method: http.MethodPost, Path: "/respond", Handler: h.Quotation.Respond},
			})

			staff := quotations.Group("")
			staff.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleStaff))
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Quotation.List},
				{Method: http.MethodGet, Path: "/export", Handler: h.Quotation.Export},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Quotation.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Quotation.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Quotation.Delete},
				{Method: http.MethodPost, Path: "/:id/permits", Handler: h.Quotation.AddPermit},
				{Method: http.MethodDelete, Path: "/:id/permits/:permitRequestId", Handler: h.Quotation.RemovePermit},
				{Method: http.MethodPost, Path: "/:id/send", Handler: h.Quotation.Send},
				{Method: http.MethodPost, Path: "/:id/sync", Handler: h.Quotation.Resync},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
