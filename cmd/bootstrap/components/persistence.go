package components

import (
	"trust-rewards/internal/infra/db"
	"trust-rewards/internal/infra/readstore"
	"trust-rewards/internal/infra/repository"
	"trust-rewards/internal/infra/uow"
	"trust-rewards/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		repository.NewWorkerRepository,
		repository.NewCouponRepository,
		repository.NewLedgerRepository,
		repository.NewRedemptionRepository,
		repository.NewOTPRepository,
		repository.NewSequenceRepository,
		readstore.NewGiftReadStore,
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerViewRepo)),
		),
		fx.Annotate(
			readstore.NewRedemptionReadStore,
			fx.As(new(queries.RedemptionViewRepo)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponViewRepo)),
		),
		fx.Annotate(
			readstore.NewWorkerReadStore,
			fx.As(new(queries.WorkerViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
