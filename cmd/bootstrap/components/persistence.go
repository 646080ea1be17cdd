package components

import (
	"log/slog"

	"barbershop-api/internal/infra/cache"
	"barbershop-api/internal/infra/db"
	"barbershop-api/internal/infra/payment"
	"barbershop-api/internal/infra/readstore"
	"barbershop-api/internal/infra/uow"
	"barbershop-api/internal/pkg/config"
	"barbershop-api/internal/usecase/commands"
	"barbershop-api/internal/usecase/queries"
	"barbershop-api/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			NewAvailabilityCache,
			fx.As(new(queries.AvailabilityCache)),
		),
		NewPaymentGateway,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewAvailabilityCache(client *redis.Client, cfg config.Config) *cache.AvailabilityCache {
	return cache.NewAvailabilityCache(client, cfg.Redis.CacheTTL)
}

func NewPaymentGateway(cfg config.Config) (commands.PaymentGateway, error) {
	if cfg.Payment.MercadoPagoToken == "" {
		slog.Warn("MP_ACCESS_TOKEN not set, online payments disabled")
		return payment.NoopGateway{}, nil
	}
	return payment.NewMercadoPagoGateway(cfg.Payment.MercadoPagoToken)
}
