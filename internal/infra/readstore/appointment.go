package readstore

import (
	"context"
	"time"

	"barbershop-api/internal/infra"
	"barbershop-api/internal/infra/db"
	"barbershop-api/internal/usecase/queries"
	"barbershop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

const appointmentViewQuery = `
SELECT a.id, a.barber_id, b.name, a.client_id, c.name, a.service_id, s.name,
       a.start_time, a.end_time, a.status,
       a.payment_amount_cents, a.payment_currency, a.payment_status, a.payment_method,
       a.notes, a.cancel_reason,
       a.started_at, a.completed_at, a.cancelled_at,
       a.created_at, a.updated_at, a.version
FROM appointments a
JOIN barbers b ON b.id = a.barber_id
JOIN clients c ON c.id = a.client_id
JOIN services s ON s.id = a.service_id
WHERE a.id = $1`

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row := r.db.QueryRow(ctx, appointmentViewQuery, id)

	var view queries.AppointmentView
	err := row.Scan(
		&view.ID, &view.BarberID, &view.BarberName,
		&view.ClientID, &view.ClientName,
		&view.ServiceID, &view.ServiceName,
		&view.StartTime, &view.EndTime, &view.Status,
		&view.AmountCents, &view.Currency, &view.PaymentStatus, &view.PaymentMethod,
		&view.Notes, &view.CancelReason,
		&view.StartedAt, &view.CompletedAt, &view.CancelledAt,
		&view.CreatedAt, &view.UpdatedAt, &view.Version,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find appointment", err, infra.Classify(err))
	}

	return &view, nil
}

const findByClientQuery = `
SELECT a.id, a.barber_id, b.name, a.client_id, c.name, s.name,
       a.start_time, a.end_time, a.status, a.payment_amount_cents
FROM appointments a
JOIN barbers b ON b.id = a.barber_id
JOIN clients c ON c.id = a.client_id
JOIN services s ON s.id = a.service_id
WHERE a.client_id = $1
  AND ($2::timestamptz IS NULL OR a.start_time >= $2)
  AND ($3::timestamptz IS NULL OR a.start_time < $3)
ORDER BY a.start_time`

const findByBarberQuery = `
SELECT a.id, a.barber_id, b.name, a.client_id, c.name, s.name,
       a.start_time, a.end_time, a.status, a.payment_amount_cents
FROM appointments a
JOIN barbers b ON b.id = a.barber_id
JOIN clients c ON c.id = a.client_id
JOIN services s ON s.id = a.service_id
WHERE a.barber_id = $1
  AND ($2::timestamptz IS NULL OR a.start_time >= $2)
  AND ($3::timestamptz IS NULL OR a.start_time < $3)
ORDER BY a.start_time`

func (r *AppointmentReadStore) FindByClient(ctx context.Context, clientID uuid.UUID, from, to *time.Time) ([]*queries.AppointmentListItem, error) {
	return r.list(ctx, findByClientQuery, clientID, from, to)
}

func (r *AppointmentReadStore) FindByBarber(ctx context.Context, barberID uuid.UUID, from, to *time.Time) ([]*queries.AppointmentListItem, error) {
	return r.list(ctx, findByBarberQuery, barberID, from, to)
}

const appointmentSnapshotQuery = `
SELECT id, barber_id, client_id, service_id, start_time, end_time, status,
       payment_amount_cents, payment_currency, payment_status, payment_method,
       COALESCE(notes, ''), COALESCE(cancel_reason, ''),
       started_at, completed_at, cancelled_at,
       created_at, updated_at, version
FROM appointments
WHERE id = $1`

// FindSnapshotByID is the command-side load used for aggregate reconstruction.
func (r *AppointmentReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	row := r.db.QueryRow(ctx, appointmentSnapshotQuery, id)

	var snap shared.AppointmentSnapshot
	err := row.Scan(
		&snap.ID, &snap.BarberID, &snap.ClientID, &snap.ServiceID,
		&snap.StartTime, &snap.EndTime, &snap.Status,
		&snap.PaymentCents, &snap.PaymentCurrency, &snap.PaymentStatus, &snap.PaymentMethod,
		&snap.Notes, &snap.CancelReason,
		&snap.StartedAt, &snap.CompletedAt, &snap.CancelledAt,
		&snap.CreatedAt, &snap.UpdatedAt, &snap.Version,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find appointment", err, infra.Classify(err))
	}

	return &snap, nil
}

// Half-open interval overlap; cancelled and no-show rows never block a slot.
// The barber row is locked first so that under ReadCommitted two concurrent
// bookings for the same barber serialize on the check-then-insert, instead of
// both reading an empty conflict set.
const conflictingQuery = `
WITH locked_barber AS (
	SELECT id FROM barbers WHERE id = $1 FOR UPDATE
)
SELECT a.id, a.start_time, a.end_time, a.status
FROM appointments a, locked_barber
WHERE a.barber_id = locked_barber.id
  AND a.status NOT IN ('cancelled', 'no_show')
  AND a.start_time < $3
  AND a.end_time > $2
  AND ($4::uuid IS NULL OR a.id <> $4)
ORDER BY a.start_time`

func (r *AppointmentReadStore) FindConflicting(ctx context.Context, barberID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]shared.ConflictingAppointment, error) {
	rows, err := r.db.Query(ctx, conflictingQuery, barberID, start, end, excludeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find conflicting appointments", err)
	}
	defer rows.Close()

	var conflicts []shared.ConflictingAppointment
	for rows.Next() {
		var c shared.ConflictingAppointment
		if err := rows.Scan(&c.ID, &c.StartTime, &c.EndTime, &c.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan conflicting appointment row", err)
		}
		conflicts = append(conflicts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate conflicting appointment rows", err)
	}

	return conflicts, nil
}

func (r *AppointmentReadStore) list(ctx context.Context, query string, id uuid.UUID, from, to *time.Time) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, query, id, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var items []*queries.AppointmentListItem
	for rows.Next() {
		var item queries.AppointmentListItem
		err := rows.Scan(
			&item.ID, &item.BarberID, &item.BarberName,
			&item.ClientID, &item.ClientName, &item.ServiceName,
			&item.StartTime, &item.EndTime, &item.Status, &item.AmountCents,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", err)
	}

	return items, nil
}
