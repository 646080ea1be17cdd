package readstore

import (
	"context"

	"barbershop-api/internal/infra"
	"barbershop-api/internal/infra/db"
	"barbershop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClientReadStore struct {
	db db.DBTX
}

func NewClientReadStore(dbtx db.DBTX) *ClientReadStore {
	return &ClientReadStore{db: dbtx}
}

const clientQuery = `
SELECT id, name, email, status,
       total_appointments, completed_appointments, cancelled_appointments, no_show_appointments,
       lifetime_value_cents, version
FROM clients
WHERE id = $1`

func (r *ClientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ClientSnapshot, error) {
	var snap shared.ClientSnapshot
	err := r.db.QueryRow(ctx, clientQuery, id).Scan(
		&snap.ID, &snap.Name, &snap.Email, &snap.Status,
		&snap.TotalAppointments, &snap.CompletedAppointments,
		&snap.CancelledAppointments, &snap.NoShowAppointments,
		&snap.LifetimeValueCents, &snap.Version,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find client", err, infra.Classify(err))
	}
	return &snap, nil
}
