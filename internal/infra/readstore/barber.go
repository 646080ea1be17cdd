package readstore

import (
	"context"

	"barbershop-api/internal/infra"
	"barbershop-api/internal/infra/db"
	"barbershop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type BarberReadStore struct {
	db db.DBTX
}

func NewBarberReadStore(dbtx db.DBTX) *BarberReadStore {
	return &BarberReadStore{db: dbtx}
}

const barberQuery = `
SELECT id, name, status, specialties
FROM barbers
WHERE id = $1`

const workingHoursQuery = `
SELECT weekday, start_min, end_min
FROM barber_working_hours
WHERE barber_id = $1
ORDER BY weekday`

func (r *BarberReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.BarberSnapshot, error) {
	var snap shared.BarberSnapshot
	err := r.db.QueryRow(ctx, barberQuery, id).Scan(&snap.ID, &snap.Name, &snap.Status, &snap.Specialties)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find barber", err, infra.Classify(err))
	}

	rows, err := r.db.Query(ctx, workingHoursQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load working hours", err)
	}
	defer rows.Close()

	for rows.Next() {
		var day shared.WorkingDay
		if err := rows.Scan(&day.Weekday, &day.StartMinutes, &day.EndMinutes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan working hours row", err)
		}
		snap.Schedule = append(snap.Schedule, day)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate working hours rows", err)
	}

	return &snap, nil
}
