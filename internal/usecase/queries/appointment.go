package queries

import (
	"context"
	"sort"
	"time"

	"barbershop-api/internal/domain/appointment"
	"barbershop-api/internal/infra"
	"barbershop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrInvalidQuery        = errs.New("single date and date range are mutually exclusive")
	ErrQueryFailed         = errs.New("appointment query failed")
)

// DateFilter restricts a listing to a single calendar day OR an explicit
// range; supplying both is an invalid query.
type DateFilter struct {
	On   *time.Time
	From *time.Time
	To   *time.Time
}

func (f DateFilter) bounds() (*time.Time, *time.Time, error) {
	if f.On != nil && (f.From != nil || f.To != nil) {
		return nil, nil, ErrInvalidQuery
	}

	if f.On != nil {
		dayStart := time.Date(f.On.Year(), f.On.Month(), f.On.Day(), 0, 0, 0, 0, f.On.Location())
		dayEnd := dayStart.Add(24 * time.Hour)
		return &dayStart, &dayEnd, nil
	}

	return f.From, f.To, nil
}

type ListFilter struct {
	Date             DateFilter
	IncludeCompleted bool
	IncludeCancelled bool
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, filter ListFilter) ([]*AppointmentListItem, error)
	ListByBarber(ctx context.Context, barberID uuid.UUID, filter ListFilter) ([]*AppointmentListItem, error)
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByClient(ctx context.Context, clientID uuid.UUID, from, to *time.Time) ([]*AppointmentListItem, error)
	FindByBarber(ctx context.Context, barberID uuid.UUID, from, to *time.Time) ([]*AppointmentListItem, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

// ListByClient returns the client's appointments most recent first, for
// history display.
func (q *appointmentQueriesImpl) ListByClient(ctx context.Context, clientID uuid.UUID, filter ListFilter) ([]*AppointmentListItem, error) {
	from, to, err := filter.Date.bounds()
	if err != nil {
		return nil, err
	}

	items, err := q.store.FindByClient(ctx, clientID, from, to)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	items = applyStatusFilter(items, filter)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartTime.After(items[j].StartTime)
	})
	return items, nil
}

// ListByBarber returns the barber's appointments earliest first, for day
// planning. The asymmetry with ListByClient is intentional.
func (q *appointmentQueriesImpl) ListByBarber(ctx context.Context, barberID uuid.UUID, filter ListFilter) ([]*AppointmentListItem, error) {
	from, to, err := filter.Date.bounds()
	if err != nil {
		return nil, err
	}

	items, err := q.store.FindByBarber(ctx, barberID, from, to)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	items = applyStatusFilter(items, filter)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartTime.Before(items[j].StartTime)
	})
	return items, nil
}

func applyStatusFilter(items []*AppointmentListItem, filter ListFilter) []*AppointmentListItem {
	result := items[:0]
	for _, item := range items {
		switch appointment.Status(item.Status) {
		case appointment.StatusCompleted:
			if !filter.IncludeCompleted {
				continue
			}
		case appointment.StatusCancelled, appointment.StatusNoShow:
			if !filter.IncludeCancelled {
				continue
			}
		}
		result = append(result, item)
	}
	return result
}
