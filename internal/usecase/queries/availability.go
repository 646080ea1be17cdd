package queries

import (
	"context"
	"log/slog"
	"time"

	"barbershop-api/internal/domain/appointment"
	"barbershop-api/internal/infra"
	"barbershop-api/internal/pkg/errs"
	"barbershop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBarberNotFound = errs.New("barber not found")

const slotStepMinutes = 30

// AvailabilityCache is a read-through optimization only; a cache failure or
// miss always falls back to the database and is never an error of the query.
type AvailabilityCache interface {
	Get(ctx context.Context, barberID uuid.UUID, day string) (*AvailabilityView, error)
	Set(ctx context.Context, barberID uuid.UUID, day string, view *AvailabilityView) error
	Invalidate(ctx context.Context, barberID uuid.UUID, day string) error
}

type AvailabilityQueries interface {
	BarberAvailability(ctx context.Context, barberID uuid.UUID, date time.Time) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	reads shared.CommandReads
	store AppointmentReadStore
	cache AvailabilityCache
}

func NewAvailabilityQueries(reads shared.CommandReads, store AppointmentReadStore, cache AvailabilityCache) AvailabilityQueries {
	return &availabilityQueriesImpl{
		reads: reads,
		store: store,
		cache: cache,
	}
}

func (q *availabilityQueriesImpl) BarberAvailability(ctx context.Context, barberID uuid.UUID, date time.Time) (*AvailabilityView, error) {
	day := date.Format("2006-01-02")

	if cached, err := q.cache.Get(ctx, barberID, day); err != nil {
		slog.Warn("availability cache read failed", "barber_id", barberID, "error", err.Error())
	} else if cached != nil {
		return cached, nil
	}

	barberSnap, err := q.reads.BarberByID(ctx, barberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBarberNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	view, err := q.computeAvailability(ctx, barberSnap, date, day)
	if err != nil {
		return nil, err
	}

	if err := q.cache.Set(ctx, barberID, day, view); err != nil {
		slog.Warn("availability cache write failed", "barber_id", barberID, "error", err.Error())
	}

	return view, nil
}

func (q *availabilityQueriesImpl) computeAvailability(ctx context.Context, barberSnap *shared.BarberSnapshot, date time.Time, day string) (*AvailabilityView, error) {
	view := &AvailabilityView{
		BarberID:  barberSnap.ID,
		Date:      day,
		FreeSlots: []SlotView{},
	}

	var window *shared.WorkingDay
	for i := range barberSnap.Schedule {
		if barberSnap.Schedule[i].Weekday == int(date.Weekday()) {
			window = &barberSnap.Schedule[i]
			break
		}
	}
	if window == nil {
		// day off
		return view, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	booked, err := q.store.FindByBarber(ctx, barberSnap.ID, &dayStart, &dayEnd)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	for m := window.StartMinutes; m+slotStepMinutes <= window.EndMinutes; m += slotStepMinutes {
		slotStart := dayStart.Add(time.Duration(m) * time.Minute)
		slotEnd := slotStart.Add(slotStepMinutes * time.Minute)

		free := true
		for _, item := range booked {
			status := appointment.Status(item.Status)
			if status == appointment.StatusCancelled || status == appointment.StatusNoShow {
				continue
			}
			if slotStart.Before(item.EndTime) && slotEnd.After(item.StartTime) {
				free = false
				break
			}
		}
		if free {
			view.FreeSlots = append(view.FreeSlots, SlotView{Start: slotStart, End: slotEnd})
		}
	}

	return view, nil
}
