//go:build unit || e2e

package builder

import (
	"time"

	"barbershop-api/internal/domain/appointment"
	"barbershop-api/internal/usecase/queries"
	"barbershop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID            uuid.UUID
	BarberID      uuid.UUID
	ClientID      uuid.UUID
	ServiceID     uuid.UUID
	StartTime     time.Time
	EndTime       time.Time
	Status        string
	AmountCents   int64
	Currency      string
	PaymentStatus string
	PaymentMethod string
	Notes         string
	CancelReason  string
	Version       int32
}

func NewAppointmentBuilder() *AppointmentBuilder {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		ID:            uuid.New(),
		BarberID:      uuid.New(),
		ClientID:      uuid.New(),
		ServiceID:     uuid.New(),
		StartTime:     start,
		EndTime:       start.Add(30 * time.Minute),
		Status:        "pending",
		AmountCents:   1500,
		Currency:      "ARS",
		PaymentStatus: "pending",
		PaymentMethod: "cash",
		Version:       1,
	}
}

func (a *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(a)
	return a
}

// Build methods
func (a *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	slot, err := appointment.NewSlot(a.StartTime, a.EndTime)
	if err != nil {
		return nil, err
	}

	status, err := appointment.NewStatus(a.Status)
	if err != nil {
		return nil, err
	}

	payment := appointment.ReconstructPayment(
		a.AmountCents,
		a.Currency,
		appointment.PaymentStatus(a.PaymentStatus),
		appointment.PaymentMethod(a.PaymentMethod),
	)

	now := time.Now()
	return appointment.ReconstructAppointment(
		a.ID, a.BarberID, a.ClientID, a.ServiceID,
		slot,
		status,
		payment,
		appointment.NewNote(a.Notes), appointment.NewNote(a.CancelReason),
		nil, nil, nil,
		now, now,
		a.Version,
	), nil
}

func (a *AppointmentBuilder) BuildSnapshot() *shared.AppointmentSnapshot {
	now := time.Now()
	return &shared.AppointmentSnapshot{
		ID:              a.ID,
		BarberID:        a.BarberID,
		ClientID:        a.ClientID,
		ServiceID:       a.ServiceID,
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		Status:          a.Status,
		PaymentCents:    a.AmountCents,
		PaymentCurrency: a.Currency,
		PaymentStatus:   a.PaymentStatus,
		PaymentMethod:   a.PaymentMethod,
		Notes:           a.Notes,
		CancelReason:    a.CancelReason,
		CreatedAt:       now,
		UpdatedAt:       now,
		Version:         a.Version,
	}
}

func (a *AppointmentBuilder) BuildView() *queries.AppointmentView {
	now := time.Now()
	return &queries.AppointmentView{
		ID:            a.ID,
		BarberID:      a.BarberID,
		BarberName:    "Test Barber",
		ClientID:      a.ClientID,
		ClientName:    "Test Client",
		ServiceID:     a.ServiceID,
		ServiceName:   "Classic Cut",
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		Status:        a.Status,
		AmountCents:   a.AmountCents,
		Currency:      a.Currency,
		PaymentStatus: a.PaymentStatus,
		PaymentMethod: a.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
		Version:       a.Version,
	}
}

// Fluent builder methods
func (a *AppointmentBuilder) WithID(id uuid.UUID) *AppointmentBuilder {
	a.ID = id
	return a
}

func (a *AppointmentBuilder) WithBarberID(id uuid.UUID) *AppointmentBuilder {
	a.BarberID = id
	return a
}

func (a *AppointmentBuilder) WithClientID(id uuid.UUID) *AppointmentBuilder {
	a.ClientID = id
	return a
}

func (a *AppointmentBuilder) WithServiceID(id uuid.UUID) *AppointmentBuilder {
	a.ServiceID = id
	return a
}

func (a *AppointmentBuilder) WithSlot(start, end time.Time) *AppointmentBuilder {
	a.StartTime = start
	a.EndTime = end
	return a
}

func (a *AppointmentBuilder) WithStatus(status string) *AppointmentBuilder {
	a.Status = status
	return a
}

func (a *AppointmentBuilder) WithPaymentMethod(method string) *AppointmentBuilder {
	a.PaymentMethod = method
	return a
}

func (a *AppointmentBuilder) WithAmount(cents int64, currency string) *AppointmentBuilder {
	a.AmountCents = cents
	a.Currency = currency
	return a
}

func (a *AppointmentBuilder) WithNotes(notes string) *AppointmentBuilder {
	a.Notes = notes
	return a
}

func (a *AppointmentBuilder) WithVersion(version int32) *AppointmentBuilder {
	a.Version = version
	return a
}
