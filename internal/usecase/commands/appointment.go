package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"barbershop-api/internal/domain/appointment"
	"barbershop-api/internal/domain/barber"
	"barbershop-api/internal/infra"
	"barbershop-api/internal/pkg/clock"
	"barbershop-api/internal/pkg/errs"
	"barbershop-api/internal/usecase/queries"
	"barbershop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	BarberID      uuid.UUID
	ClientID      uuid.UUID
	ServiceID     uuid.UUID
	StartTime     time.Time
	Notes         *string
	PaymentMethod *string
}

type RescheduleRequest struct {
	AppointmentID uuid.UUID
	NewStartTime  time.Time
	NewBarberID   *uuid.UUID
}

type AppointmentCommands interface {
	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*queries.AppointmentView, error)
	ConfirmAppointment(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error)
	StartAppointment(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error)
	CompleteAppointment(ctx context.Context, id uuid.UUID, notes *string) (*queries.AppointmentView, error)
	CancelAppointment(ctx context.Context, id uuid.UUID, reason *string) error
	MarkNoShow(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error)
	RescheduleAppointment(ctx context.Context, req RescheduleRequest) (*queries.AppointmentView, error)
}

type appointmentCommandsImpl struct {
	uow                shared.UnitOfWork
	appointmentQueries queries.AppointmentQueries
	gateway            PaymentGateway
	cache              queries.AvailabilityCache
	clock              clock.Clock
}

func NewAppointmentCommands(
	uow shared.UnitOfWork,
	appointmentQueries queries.AppointmentQueries,
	gateway PaymentGateway,
	cache queries.AvailabilityCache,
	clk clock.Clock,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:                uow,
		appointmentQueries: appointmentQueries,
		gateway:            gateway,
		cache:              cache,
		clock:              clk,
	}
}

// CreateAppointment validates the actors and the requested slot, then checks
// for conflicts and persists inside one transaction so the check-then-write
// window is closed at the storage boundary.
func (uc *appointmentCommandsImpl) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*queries.AppointmentView, error) {
	reads := uc.uow.CommandReads()

	barberEntity, err := uc.validateBarber(ctx, reads, req.BarberID)
	if err != nil {
		return nil, err
	}

	clientSnap, err := reads.ClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, notFoundOr(err, ErrClientNotFound)
	}
	clientEntity, err := clientFromSnapshot(clientSnap)
	if err != nil {
		return nil, err
	}
	if !clientEntity.CanBook() {
		return nil, ErrClientInactive
	}

	svcSnap, err := reads.ServiceByID(ctx, req.ServiceID)
	if err != nil {
		return nil, notFoundOr(err, ErrServiceNotFound)
	}
	svc, err := serviceFromSnapshot(svcSnap)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive() {
		return nil, ErrServiceUnavailable
	}

	if missing := barberEntity.MissingSkills(svc.RequiredSkills()); len(missing) > 0 {
		return nil, &SkillMismatchError{BarberID: barberEntity.ID(), Missing: missing}
	}

	slot, err := appointment.NewSlot(req.StartTime, req.StartTime.Add(svc.Duration()))
	if err != nil {
		return nil, err
	}

	if !barberEntity.WorksDuring(slot) {
		return nil, ErrOutsideWorkingHours
	}

	method, err := paymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	payment, err := appointment.NewPendingPayment(svc.PriceCents(), svc.Currency(), method)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	notes := appointment.NewNote("")
	if req.Notes != nil {
		notes = appointment.NewNote(*req.Notes)
	}

	agg := appointment.NewAppointment(req.BarberID, req.ClientID, req.ServiceID, slot, payment, notes, uc.clock.Now())

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if cerr := assertSlotFree(ctx, tx, req.BarberID, slot, nil); cerr != nil {
			return cerr
		}
		if cerr := tx.Appointments().Create(ctx, tx.DB(), agg); cerr != nil {
			return mapWriteErr(cerr)
		}

		// Reload inside the transaction so the version check covers the write.
		txClient, cerr := uc.loadClient(ctx, tx, req.ClientID)
		if cerr != nil {
			return cerr
		}
		txClient.RecordBooking()
		if werr := tx.Clients().UpdateHistory(ctx, tx.DB(), txClient); werr != nil {
			return mapWriteErr(werr)
		}

		return uc.enqueueNotification(ctx, tx, "appointment_created", agg.ID())
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateAvailability(ctx, agg.BarberID(), slot.Start())

	return uc.appointmentQueries.GetByID(ctx, agg.ID())
}

// RescheduleAppointment swaps the slot (and optionally the barber) after the
// new slot re-passes conflict detection, excluding the appointment's own
// booking. The original slot stays intact on any failure.
func (uc *appointmentCommandsImpl) RescheduleAppointment(ctx context.Context, req RescheduleRequest) (*queries.AppointmentView, error) {
	var (
		oldBarberID uuid.UUID
		oldStart    time.Time
		newBarberID uuid.UUID
		newStart    time.Time
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := tx.Reads().AppointmentByID(ctx, req.AppointmentID)
		if rerr != nil {
			return notFoundOr(rerr, ErrAppointmentNotFound)
		}
		agg, rerr := appointmentFromSnapshot(snap)
		if rerr != nil {
			return rerr
		}

		svcSnap, rerr := tx.Reads().ServiceByID(ctx, agg.ServiceID())
		if rerr != nil {
			return notFoundOr(rerr, ErrServiceNotFound)
		}
		svc, rerr := serviceFromSnapshot(svcSnap)
		if rerr != nil {
			return rerr
		}

		// Duration is never altered by a reschedule.
		newSlot, rerr := appointment.NewSlot(req.NewStartTime, req.NewStartTime.Add(svc.Duration()))
		if rerr != nil {
			return rerr
		}

		targetBarber, berr := uc.validateBarber(ctx, tx.Reads(), agg.BarberID())
		if berr != nil {
			return berr
		}
		if req.NewBarberID != nil && *req.NewBarberID != agg.BarberID() {
			targetBarber, berr = uc.validateBarber(ctx, tx.Reads(), *req.NewBarberID)
			if berr != nil {
				return berr
			}
			if missing := targetBarber.MissingSkills(svc.RequiredSkills()); len(missing) > 0 {
				return &SkillMismatchError{BarberID: targetBarber.ID(), Missing: missing}
			}
		}

		// The schedule guard holds for every reschedule, barber change or not.
		if !targetBarber.WorksDuring(newSlot) {
			return ErrOutsideWorkingHours
		}
		targetBarberID := targetBarber.ID()

		excludeID := agg.ID()
		if cerr := assertSlotFree(ctx, tx, targetBarberID, newSlot, &excludeID); cerr != nil {
			return cerr
		}

		oldBarberID, oldStart = agg.BarberID(), agg.Slot().Start()

		if targetBarberID != agg.BarberID() {
			if terr := agg.ReassignBarber(targetBarberID); terr != nil {
				return terr
			}
		}
		if terr := agg.Reschedule(newSlot); terr != nil {
			return terr
		}

		newBarberID, newStart = agg.BarberID(), agg.Slot().Start()

		if werr := tx.Appointments().Update(ctx, tx.DB(), agg); werr != nil {
			return mapWriteErr(werr)
		}
		return uc.enqueueNotification(ctx, tx, "appointment_rescheduled", agg.ID())
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateAvailability(ctx, oldBarberID, oldStart)
	uc.invalidateAvailability(ctx, newBarberID, newStart)

	return uc.appointmentQueries.GetByID(ctx, req.AppointmentID)
}

func (uc *appointmentCommandsImpl) validateBarber(ctx context.Context, reads shared.CommandReads, barberID uuid.UUID) (*barber.Barber, error) {
	snap, err := reads.BarberByID(ctx, barberID)
	if err != nil {
		return nil, notFoundOr(err, ErrBarberNotFound)
	}
	entity, err := barberFromSnapshot(snap)
	if err != nil {
		return nil, err
	}
	if !entity.CanTakeAppointments() {
		return nil, ErrBarberInactive
	}
	return entity, nil
}

// assertSlotFree runs the conflict detector inside the current transaction.
func assertSlotFree(ctx context.Context, tx shared.Tx, barberID uuid.UUID, slot appointment.Slot, excludeID *uuid.UUID) error {
	conflicts, err := tx.Reads().FindConflicting(ctx, barberID, slot.Start(), slot.End(), excludeID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(conflicts) > 0 {
		first := conflicts[0]
		return &SchedulingConflictError{
			ConflictingID: first.ID,
			Start:         first.StartTime,
			End:           first.EndTime,
		}
	}
	return nil
}

func (uc *appointmentCommandsImpl) enqueueNotification(ctx context.Context, tx shared.Tx, topic string, appointmentID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"appointment_id": appointmentID,
		"type":           topic,
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), "email", topic, payload, uc.clock.Now())
}

func (uc *appointmentCommandsImpl) invalidateAvailability(ctx context.Context, barberID uuid.UUID, day time.Time) {
	if err := uc.cache.Invalidate(ctx, barberID, day.Format("2006-01-02")); err != nil {
		slog.Warn("availability cache invalidation failed", "barber_id", barberID, "error", err.Error())
	}
}

func paymentMethod(raw *string) (appointment.PaymentMethod, error) {
	if raw == nil {
		return appointment.MethodCash, nil
	}
	method := appointment.PaymentMethod(*raw)
	switch method {
	case appointment.MethodCash, appointment.MethodCard, appointment.MethodMercadoPago:
		return method, nil
	default:
		return "", ErrDomainValidation
	}
}

func notFoundOr(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

func mapWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindVersionConflict):
		return ErrConcurrencyConflict
	case infra.IsKind(err, infra.KindNotFound):
		return ErrAppointmentNotFound
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
