//go:build unit || e2e

package builder

import (
	"time"

	"barbershop-api/internal/domain/barber"
	"barbershop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type BarberBuilder struct {
	ID          uuid.UUID
	Name        string
	Specialties []string
	Schedule    []shared.WorkingDay
	Status      string
}

// NewBarberBuilder defaults to an active barber working Monday through
// Saturday, 09:00-18:00.
func NewBarberBuilder() *BarberBuilder {
	schedule := make([]shared.WorkingDay, 0, 6)
	for wd := int(time.Monday); wd <= int(time.Saturday); wd++ {
		schedule = append(schedule, shared.WorkingDay{Weekday: wd, StartMinutes: 9 * 60, EndMinutes: 18 * 60})
	}

	return &BarberBuilder{
		ID:          uuid.New(),
		Name:        "Test Barber",
		Specialties: []string{"haircut", "beard_trim"},
		Schedule:    schedule,
		Status:      "active",
	}
}

func (b *BarberBuilder) With(mutate func(*BarberBuilder)) *BarberBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BarberBuilder) BuildDomain() (*barber.Barber, error) {
	status, err := barber.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}

	schedule := make(barber.WeeklySchedule, len(b.Schedule))
	for _, day := range b.Schedule {
		window, werr := barber.NewWorkingWindow(day.StartMinutes, day.EndMinutes)
		if werr != nil {
			return nil, werr
		}
		schedule[time.Weekday(day.Weekday)] = window
	}

	return barber.Reconstruct(b.ID, b.Name, barber.SpecialtiesFromStrings(b.Specialties), schedule, status), nil
}

func (b *BarberBuilder) BuildSnapshot() *shared.BarberSnapshot {
	return &shared.BarberSnapshot{
		ID:          b.ID,
		Name:        b.Name,
		Status:      b.Status,
		Specialties: b.Specialties,
		Schedule:    b.Schedule,
	}
}

// Fluent builder methods
func (b *BarberBuilder) WithID(id uuid.UUID) *BarberBuilder {
	b.ID = id
	return b
}

func (b *BarberBuilder) WithName(name string) *BarberBuilder {
	b.Name = name
	return b
}

func (b *BarberBuilder) WithSpecialties(specialties ...string) *BarberBuilder {
	b.Specialties = specialties
	return b
}

func (b *BarberBuilder) WithWorkingDay(weekday time.Weekday, startMin, endMin int) *BarberBuilder {
	for i, day := range b.Schedule {
		if day.Weekday == int(weekday) {
			b.Schedule[i].StartMinutes = startMin
			b.Schedule[i].EndMinutes = endMin
			return b
		}
	}
	b.Schedule = append(b.Schedule, shared.WorkingDay{Weekday: int(weekday), StartMinutes: startMin, EndMinutes: endMin})
	return b
}

func (b *BarberBuilder) WithDayOff(weekday time.Weekday) *BarberBuilder {
	filtered := b.Schedule[:0]
	for _, day := range b.Schedule {
		if day.Weekday != int(weekday) {
			filtered = append(filtered, day)
		}
	}
	b.Schedule = filtered
	return b
}

func (b *BarberBuilder) AsInactive() *BarberBuilder {
	b.Status = "inactive"
	return b
}
