package barber

import (
	"time"

	"barbershop-api/internal/domain/appointment"
	"barbershop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errs.New("invalid barber status")
	ErrInvalidWindow = errs.New("working hours start must be before end")
)

// WorkingWindow is a within-day window in minutes from midnight, interpreted
// in the shop's local timezone.
type WorkingWindow struct {
	startMin int
	endMin   int
}

func NewWorkingWindow(startMin, endMin int) (WorkingWindow, error) {
	if startMin < 0 || endMin > 24*60 || startMin >= endMin {
		return WorkingWindow{}, ErrInvalidWindow
	}
	return WorkingWindow{startMin: startMin, endMin: endMin}, nil
}

func (w WorkingWindow) StartMinutes() int { return w.startMin }
func (w WorkingWindow) EndMinutes() int   { return w.endMin }

// WeeklySchedule maps weekdays to working windows; a missing weekday is a day
// off.
type WeeklySchedule map[time.Weekday]WorkingWindow

// Barber is a referenced aggregate: the scheduling core reads it to validate
// bookings but only the appointment holds its identity.
type Barber struct {
	id          uuid.UUID
	name        string
	specialties []Specialty
	schedule    WeeklySchedule
	status      Status
}

func Reconstruct(id uuid.UUID, name string, specialties []Specialty, schedule WeeklySchedule, status Status) *Barber {
	return &Barber{
		id:          id,
		name:        name,
		specialties: specialties,
		schedule:    schedule,
		status:      status,
	}
}

func (b *Barber) ID() uuid.UUID            { return b.id }
func (b *Barber) Name() string             { return b.name }
func (b *Barber) Specialties() []Specialty { return b.specialties }
func (b *Barber) Schedule() WeeklySchedule { return b.schedule }
func (b *Barber) Status() Status           { return b.status }

// Only active barbers accept new appointments.
func (b *Barber) CanTakeAppointments() bool {
	return b.status == StatusActive
}

// MissingSkills returns the required specialties this barber does not cover.
// An empty result means the barber qualifies for the service.
func (b *Barber) MissingSkills(required []Specialty) []Specialty {
	var missing []Specialty
	for _, req := range required {
		found := false
		for _, own := range b.specialties {
			if own == req {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, req)
		}
	}
	return missing
}

// WorksDuring reports whether the slot falls inside the barber's declared
// working window for the slot's weekday. Slots spanning midnight are never
// inside a window.
func (b *Barber) WorksDuring(slot appointment.Slot) bool {
	window, ok := b.schedule[slot.Start().Weekday()]
	if !ok {
		return false
	}

	startMin := slot.Start().Hour()*60 + slot.Start().Minute()
	endMin := startMin + int(slot.Duration().Minutes())
	return startMin >= window.startMin && endMin <= window.endMin
}
