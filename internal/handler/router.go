package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"trust-rewards/internal/handler/api"
	"trust-rewards/internal/handler/middleware"
	"trust-rewards/internal/pkg/config"
	"trust-rewards/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	couponHandler *api.CouponHandler,
	walletHandler *api.WalletHandler,
	redemptionHandler *api.RedemptionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, couponHandler, walletHandler, redemptionHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	couponHandler *api.CouponHandler,
	walletHandler *api.WalletHandler,
	redemptionHandler *api.RedemptionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")

	// Worker-facing surface
	app := apiGroup.Group("/app")
	app.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(jwt.RoleWorker))
	{
		addRoutes(app, []route{
			{Method: http.MethodPost, Path: "/coupons/scan", Handler: couponHandler.Scan},
			{Method: http.MethodGet, Path: "/coupons/history", Handler: couponHandler.ScanHistory},
			{Method: http.MethodGet, Path: "/wallet", Handler: walletHandler.Overview},
			{Method: http.MethodGet, Path: "/wallet/ledger", Handler: walletHandler.Ledger},
			{Method: http.MethodPost, Path: "/redemptions/otp/send", Handler: redemptionHandler.SendOTP},
			{Method: http.MethodPost, Path: "/redemptions/otp/verify", Handler: redemptionHandler.VerifyOTP},
			{Method: http.MethodPost, Path: "/redemptions", Handler: redemptionHandler.Redeem},
			{Method: http.MethodGet, Path: "/redemptions", Handler: redemptionHandler.ListMine},
			{Method: http.MethodPost, Path: "/redemptions/:id/cancel", Handler: redemptionHandler.Cancel},
		})
	}

	// Admin-facing surface
	web := apiGroup.Group("/web")
	web.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(jwt.RoleAdmin))
	{
		addRoutes(web, []route{
			{Method: http.MethodPost, Path: "/coupons/batches", Handler: couponHandler.GenerateBatch},
			{Method: http.MethodGet, Path: "/coupons/batches", Handler: couponHandler.ListBatches},
			{Method: http.MethodGet, Path: "/coupons", Handler: couponHandler.ListCodes},
			{Method: http.MethodGet, Path: "/redemptions", Handler: redemptionHandler.List},
			{Method: http.MethodGet, Path: "/redemptions/:id", Handler: redemptionHandler.Detail},
			{Method: http.MethodPatch, Path: "/redemptions/:id/status", Handler: redemptionHandler.ChangeStatus},
			{Method: http.MethodGet, Path: "/ledger", Handler: walletHandler.AdminLedger},
			{Method: http.MethodPost, Path: "/workers/:id/wallet/adjust", Handler: walletHandler.Adjust},
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
