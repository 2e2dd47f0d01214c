package handler

import (
	"net/http"

	"github.com/sanctumos/clawedroad/internal/handler/api"
	"github.com/sanctumos/clawedroad/internal/handler/middleware"
	"github.com/sanctumos/clawedroad/internal/pkg/config"
	"github.com/sanctumos/clawedroad/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Transactions *api.TransactionHandler
	Disputes     *api.DisputeHandler
	Settlement   *api.SettlementHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, h, authMiddleware, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		transactions := apiGroup.Group("/transactions")
		addRoutes(transactions, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Transactions.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Transactions.Get},
			{Method: http.MethodGet, Path: "/:id/history", Handler: h.Transactions.History},
			{Method: http.MethodGet, Path: "/:id/payment", Handler: h.Transactions.PaymentDetails},
			{Method: http.MethodPost, Path: "/:id/actions", Handler: h.Transactions.RequestAction},
			{Method: http.MethodPost, Path: "/:id/shipping", Handler: h.Transactions.AppendShipping},
			{Method: http.MethodPost, Path: "/:id/disputes", Handler: h.Disputes.Open},
		})

		disputes := apiGroup.Group("/disputes")
		addRoutes(disputes, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Disputes.Get},
			{Method: http.MethodPost, Path: "/:id/claims", Handler: h.Disputes.AddClaim},
			{Method: http.MethodPost, Path: "/:id/resolve", Handler: h.Disputes.Resolve, Mw: []gin.HandlerFunc{authMiddleware.RequireStaff()}},
			{Method: http.MethodPost, Path: "/:id/partial-refund", Handler: h.Disputes.PartialRefund, Mw: []gin.HandlerFunc{authMiddleware.RequireStaff()}},
		})

		staff := apiGroup.Group("/staff")
		staff.Use(authMiddleware.RequireStaff())
		addRoutes(staff, []route{
			{Method: http.MethodGet, Path: "/disputes", Handler: h.Disputes.ListOpen},
		})

		settlement := apiGroup.Group("/settlement/intents")
		settlement.Use(authMiddleware.RequireSettlement())
		addRoutes(settlement, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Settlement.Pending},
			{Method: http.MethodPost, Path: "/:id/claim", Handler: h.Settlement.Claim},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Settlement.Complete},
			{Method: http.MethodPost, Path: "/:id/fail", Handler: h.Settlement.Fail},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Settlement.Mark},
		})
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
