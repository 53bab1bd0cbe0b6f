package components

import (
	"trust-rewards/internal/pkg/clock"
	"trust-rewards/internal/usecase/commands"
	"trust-rewards/internal/usecase/queries"
	"trust-rewards/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewCodeGenerator,
	commands.NewLogOTPSender,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCouponUseCase,
		commands.NewCouponBatchUseCase,
		commands.NewOTPUseCase,
		commands.NewRedemptionUseCase,
		commands.NewWalletUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLedgerQueries,
		queries.NewWalletQueries,
		queries.NewRedemptionQueries,
		queries.NewCouponQueries,
	),
)
