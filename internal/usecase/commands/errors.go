package commands

import (
	"fmt"
	"strings"
	"time"

	"barbershop-api/internal/domain/barber"
	"barbershop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBarberNotFound      = errs.New("barber not found")
	ErrClientNotFound      = errs.New("client not found")
	ErrServiceNotFound     = errs.New("service not found")
	ErrAppointmentNotFound = errs.New("appointment not found")

	ErrBarberInactive     = errs.New("barber is not accepting appointments")
	ErrClientInactive     = errs.New("client is not allowed to book")
	ErrServiceUnavailable = errs.New("service is not available")

	ErrSkillMismatch       = errs.New("barber lacks required skills")
	ErrSchedulingConflict  = errs.New("slot conflicts with an existing appointment")
	ErrOutsideWorkingHours = errs.New("slot is outside the barber's working hours")

	// ErrConcurrencyConflict signals an optimistic-lock failure: the caller
	// should reload and retry. It is distinct from ErrSchedulingConflict.
	ErrConcurrencyConflict = errs.New("appointment was modified concurrently")

	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// SkillMismatchError names the specialties the barber is missing for the
// requested service.
type SkillMismatchError struct {
	BarberID uuid.UUID
	Missing  []barber.Specialty
}

func (e *SkillMismatchError) Error() string {
	return fmt.Sprintf("barber %s is missing skills: %s", e.BarberID, strings.Join(barber.SpecialtiesToStrings(e.Missing), ", "))
}

func (e *SkillMismatchError) Is(target error) bool {
	return target == ErrSkillMismatch
}

// SchedulingConflictError carries the bounds of the appointment the candidate
// slot collides with.
type SchedulingConflictError struct {
	ConflictingID uuid.UUID
	Start         time.Time
	End           time.Time
}

func (e *SchedulingConflictError) Error() string {
	return fmt.Sprintf("slot overlaps appointment %s [%s,%s)",
		e.ConflictingID, e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

func (e *SchedulingConflictError) Is(target error) bool {
	return target == ErrSchedulingConflict
}
