package appointment

import (
	"fmt"
	"time"

	"barbershop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidSlot       = errs.New("slot start must be before slot end")
	ErrInvalidStatus     = errs.New("invalid appointment status")
	ErrNegativeAmount    = errs.New("payment amount cannot be negative")
	ErrMissingCurrency   = errs.New("payment currency is required")
	ErrInvalidTransition = errs.New("invalid state transition")
)

// InvalidTransitionError names the status the aggregate was in and the
// operation that was refused. The aggregate is never mutated on refusal.
type InvalidTransitionError struct {
	From      Status
	Operation string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s appointment in status %q", e.Operation, e.From)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// Appointment is the aggregate root of the scheduling core. It owns its Slot
// and PaymentInfo and holds only the identities of barber, client and service.
type Appointment struct {
	id           uuid.UUID
	barberID     uuid.UUID
	clientID     uuid.UUID
	serviceID    uuid.UUID
	slot         Slot
	status       Status
	payment      PaymentInfo
	notes        Note
	cancelReason Note
	startedAt    *time.Time
	completedAt  *time.Time
	cancelledAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
	version      int32
}

func NewAppointment(
	barberID, clientID, serviceID uuid.UUID,
	slot Slot,
	payment PaymentInfo,
	notes Note,
	now time.Time,
) *Appointment {
	return &Appointment{
		id:        uuid.New(),
		barberID:  barberID,
		clientID:  clientID,
		serviceID: serviceID,
		slot:      slot,
		status:    StatusPending,
		payment:   payment,
		notes:     notes,
		createdAt: now,
		updatedAt: now,
		version:   1,
	}
}

func ReconstructAppointment(
	id, barberID, clientID, serviceID uuid.UUID,
	slot Slot,
	status Status,
	payment PaymentInfo,
	notes, cancelReason Note,
	startedAt, completedAt, cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
	version int32,
) *Appointment {
	return &Appointment{
		id:           id,
		barberID:     barberID,
		clientID:     clientID,
		serviceID:    serviceID,
		slot:         slot,
		status:       status,
		payment:      payment,
		notes:        notes,
		cancelReason: cancelReason,
		startedAt:    startedAt,
		completedAt:  completedAt,
		cancelledAt:  cancelledAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		version:      version,
	}
}

func (a *Appointment) ID() uuid.UUID           { return a.id }
func (a *Appointment) BarberID() uuid.UUID     { return a.barberID }
func (a *Appointment) ClientID() uuid.UUID     { return a.clientID }
func (a *Appointment) ServiceID() uuid.UUID    { return a.serviceID }
func (a *Appointment) Slot() Slot              { return a.slot }
func (a *Appointment) Status() Status          { return a.status }
func (a *Appointment) Payment() PaymentInfo    { return a.payment }
func (a *Appointment) Notes() Note             { return a.notes }
func (a *Appointment) CancelReason() Note      { return a.cancelReason }
func (a *Appointment) StartedAt() *time.Time   { return a.startedAt }
func (a *Appointment) CompletedAt() *time.Time { return a.completedAt }
func (a *Appointment) CancelledAt() *time.Time { return a.cancelledAt }
func (a *Appointment) CreatedAt() time.Time    { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time    { return a.updatedAt }
func (a *Appointment) Version() int32          { return a.version }

// IsActive reports whether the appointment still blocks its barber's slot.
func (a *Appointment) IsActive() bool {
	return a.status != StatusCancelled && a.status != StatusNoShow
}

func (a *Appointment) Confirm() error {
	switch a.status {
	case StatusPending:
		a.status = StatusConfirmed
		return nil
	case StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return &InvalidTransitionError{From: a.status, Operation: "confirm"}
	default:
		return ErrInvalidStatus
	}
}

func (a *Appointment) Start(now time.Time) error {
	switch a.status {
	case StatusConfirmed:
		a.status = StatusInProgress
		a.startedAt = &now
		return nil
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return &InvalidTransitionError{From: a.status, Operation: "start"}
	default:
		return ErrInvalidStatus
	}
}

func (a *Appointment) Complete(notes Note, now time.Time) error {
	switch a.status {
	case StatusConfirmed, StatusInProgress:
		a.status = StatusCompleted
		a.completedAt = &now
		if !notes.IsEmpty() {
			a.notes = notes
		}
		return nil
	case StatusPending, StatusCompleted, StatusCancelled, StatusNoShow:
		return &InvalidTransitionError{From: a.status, Operation: "complete"}
	default:
		return ErrInvalidStatus
	}
}

func (a *Appointment) MarkNoShow(now time.Time) error {
	switch a.status {
	case StatusConfirmed, StatusInProgress:
		a.status = StatusNoShow
		a.cancelledAt = &now
		return nil
	case StatusPending, StatusCompleted, StatusCancelled, StatusNoShow:
		return &InvalidTransitionError{From: a.status, Operation: "mark no-show"}
	default:
		return ErrInvalidStatus
	}
}

func (a *Appointment) Cancel(reason Note, now time.Time) error {
	switch a.status {
	case StatusPending, StatusConfirmed:
		a.status = StatusCancelled
		a.cancelReason = reason
		a.cancelledAt = &now
		return nil
	case StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return &InvalidTransitionError{From: a.status, Operation: "cancel"}
	default:
		return ErrInvalidStatus
	}
}

// Reschedule swaps the slot in place; the status is preserved. The caller must
// have re-run conflict detection against the new slot before invoking this.
func (a *Appointment) Reschedule(newSlot Slot) error {
	switch a.status {
	case StatusPending, StatusConfirmed:
		a.slot = newSlot
		return nil
	case StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return &InvalidTransitionError{From: a.status, Operation: "reschedule"}
	default:
		return ErrInvalidStatus
	}
}

// ReassignBarber moves the appointment to another barber as part of a
// reschedule. Same guard as Reschedule.
func (a *Appointment) ReassignBarber(barberID uuid.UUID) error {
	switch a.status {
	case StatusPending, StatusConfirmed:
		a.barberID = barberID
		return nil
	case StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return &InvalidTransitionError{From: a.status, Operation: "reassign"}
	default:
		return ErrInvalidStatus
	}
}
