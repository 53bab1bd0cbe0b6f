package components

import (
	"trust-rewards/internal/handler"
	"trust-rewards/internal/handler/api"
	"trust-rewards/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCouponHandler,
		api.NewWalletHandler,
		api.NewRedemptionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
