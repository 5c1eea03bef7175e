package components

import (
	"entitlement-engine/internal/infra/catalogstore"
	"entitlement-engine/internal/infra/readstore"
	sqlc "entitlement-engine/internal/infra/sqlc/generated"
	"entitlement-engine/internal/infra/uow"
	"entitlement-engine/internal/pkg/config"
	"entitlement-engine/internal/usecase/commands"
	"entitlement-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderViewQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		// Entitlement
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EntitlementViewQueries)),
		),
		fx.Annotate(
			readstore.NewEntitlementReadStore,
			fx.As(new(queries.EntitlementReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(catalogstore.PackageQueries)),
		),
		fx.Annotate(
			catalogstore.NewPostgresReader,
			fx.As(fx.Self()),
			fx.As(new(commands.CatalogReader)),
		),
		NewPackageDisplayReader,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Write repositories are created per transaction by the unit of work
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

// NewPackageDisplayReader fronts the packages table with the Redis cache.
// Only display queries get it; commands read the table inside their transaction.
func NewPackageDisplayReader(source *catalogstore.PostgresReader, db sqlc.DBTX, client *redis.Client, cfg config.Config) queries.PackageReader {
	return catalogstore.NewCachedReader(source, db, client, cfg.Redis.CatalogCacheTTL)
}
