package repository

import (
	"context"

	"barbershop-api/internal/domain/appointment"
	"barbershop-api/internal/infra"
	"barbershop-api/internal/infra/db"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

const createAppointmentQuery = `
INSERT INTO appointments (
	id, barber_id, client_id, service_id, start_time, end_time, status,
	payment_amount_cents, payment_currency, payment_status, payment_method,
	notes, cancel_reason, started_at, completed_at, cancelled_at,
	created_at, updated_at, version
) VALUES (
	$1, $2, $3, $4, $5, $6, $7,
	$8, $9, $10, $11,
	NULLIF($12, ''), NULLIF($13, ''), $14, $15, $16,
	$17, $18, $19
)`

func (r *AppointmentRepository) Create(ctx context.Context, dbtx db.DBTX, a *appointment.Appointment) error {
	_, err := dbtx.Exec(ctx, createAppointmentQuery,
		a.ID(), a.BarberID(), a.ClientID(), a.ServiceID(),
		a.Slot().Start(), a.Slot().End(), a.Status().String(),
		a.Payment().AmountCents(), a.Payment().Currency(),
		a.Payment().Status().String(), string(a.Payment().Method()),
		a.Notes().String(), a.CancelReason().String(),
		a.StartedAt(), a.CompletedAt(), a.CancelledAt(),
		a.CreatedAt(), a.UpdatedAt(), a.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create appointment", err, infra.Classify(err))
	}
	return nil
}

const updateAppointmentQuery = `
UPDATE appointments
SET barber_id = $2, start_time = $3, end_time = $4, status = $5,
    payment_status = $6,
    notes = NULLIF($7, ''), cancel_reason = NULLIF($8, ''),
    started_at = $9, completed_at = $10, cancelled_at = $11,
    updated_at = now(), version = version + 1
WHERE id = $1 AND version = $12`

// Update bumps the row version; a vanished row at the loaded version means a
// concurrent writer won.
func (r *AppointmentRepository) Update(ctx context.Context, dbtx db.DBTX, a *appointment.Appointment) error {
	tag, err := dbtx.Exec(ctx, updateAppointmentQuery,
		a.ID(), a.BarberID(),
		a.Slot().Start(), a.Slot().End(), a.Status().String(),
		a.Payment().Status().String(),
		a.Notes().String(), a.CancelReason().String(),
		a.StartedAt(), a.CompletedAt(), a.CancelledAt(),
		a.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment", err, infra.Classify(err))
	}

	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment was modified concurrently", nil, infra.KindVersionConflict)
	}
	return nil
}
