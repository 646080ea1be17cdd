package repository

import (
	"context"

	"barbershop-api/internal/domain/client"
	"barbershop-api/internal/infra"
	"barbershop-api/internal/infra/db"
)

type ClientRepository struct{}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

const updateClientHistoryQuery = `
UPDATE clients
SET total_appointments = $2,
    completed_appointments = $3,
    cancelled_appointments = $4,
    no_show_appointments = $5,
    lifetime_value_cents = $6,
    updated_at = now(),
    version = version + 1
WHERE id = $1 AND version = $7`

func (r *ClientRepository) UpdateHistory(ctx context.Context, dbtx db.DBTX, c *client.Client) error {
	history := c.History()
	tag, err := dbtx.Exec(ctx, updateClientHistoryQuery,
		c.ID(),
		history.TotalAppointments, history.CompletedAppointments,
		history.CancelledAppointments, history.NoShowAppointments,
		history.LifetimeValueCents,
		c.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update client history", err, infra.Classify(err))
	}

	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("client was modified concurrently", nil, infra.KindVersionConflict)
	}
	return nil
}
