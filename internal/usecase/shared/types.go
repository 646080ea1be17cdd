package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations; commands reconstruct domain
// aggregates from these.

type BarberSnapshot struct {
	ID          uuid.UUID
	Name        string
	Status      string
	Specialties []string
	Schedule    []WorkingDay
}

type WorkingDay struct {
	Weekday      int
	StartMinutes int
	EndMinutes   int
}

type ClientSnapshot struct {
	ID                    uuid.UUID
	Name                  string
	Email                 string
	Status                string
	TotalAppointments     int32
	CompletedAppointments int32
	CancelledAppointments int32
	NoShowAppointments    int32
	LifetimeValueCents    int64
	Version               int32
}

type ServiceSnapshot struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int32
	PriceCents      int64
	Currency        string
	RequiredSkills  []string
	IsActive        bool
}

type AppointmentSnapshot struct {
	ID             uuid.UUID
	BarberID       uuid.UUID
	ClientID       uuid.UUID
	ServiceID      uuid.UUID
	StartTime      time.Time
	EndTime        time.Time
	Status          string
	PaymentCents    int64
	PaymentCurrency string
	PaymentStatus   string
	PaymentMethod   string
	Notes           string
	CancelReason    string
	StartedAt       *time.Time
	CompletedAt     *time.Time
	CancelledAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int32
}

type ConflictingAppointment struct {
	ID        uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Status    string
}
