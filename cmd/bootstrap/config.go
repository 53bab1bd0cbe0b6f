package bootstrap

import (
	"trust-rewards/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.OTPConfig { return cfg.OTP },
	),
)
