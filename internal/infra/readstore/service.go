package readstore

import (
	"context"

	"barbershop-api/internal/infra"
	"barbershop-api/internal/infra/db"
	"barbershop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

const serviceQuery = `
SELECT id, name, duration_min, price_cents, currency, required_skills, active
FROM services
WHERE id = $1`

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	var snap shared.ServiceSnapshot
	err := r.db.QueryRow(ctx, serviceQuery, id).Scan(
		&snap.ID, &snap.Name, &snap.DurationMinutes,
		&snap.PriceCents, &snap.Currency, &snap.RequiredSkills, &snap.IsActive,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service", err, infra.Classify(err))
	}
	return &snap, nil
}
