package commands

import (
	"time"

	"barbershop-api/internal/domain/appointment"
	"barbershop-api/internal/domain/barber"
	"barbershop-api/internal/domain/client"
	"barbershop-api/internal/domain/service"
	"barbershop-api/internal/pkg/errs"
	"barbershop-api/internal/usecase/shared"
)

// Snapshot-to-aggregate reconstruction. Stored data is trusted: a snapshot
// that fails domain validation means a corrupted row, surfaced as a domain
// validation error rather than silently coerced.

func barberFromSnapshot(snap *shared.BarberSnapshot) (*barber.Barber, error) {
	status, err := barber.NewStatus(snap.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	schedule := make(barber.WeeklySchedule, len(snap.Schedule))
	for _, day := range snap.Schedule {
		window, werr := barber.NewWorkingWindow(day.StartMinutes, day.EndMinutes)
		if werr != nil {
			return nil, errs.Mark(werr, ErrDomainValidation)
		}
		schedule[time.Weekday(day.Weekday)] = window
	}

	return barber.Reconstruct(snap.ID, snap.Name, barber.SpecialtiesFromStrings(snap.Specialties), schedule, status), nil
}

func clientFromSnapshot(snap *shared.ClientSnapshot) (*client.Client, error) {
	status, err := client.NewStatus(snap.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	history := client.History{
		TotalAppointments:     snap.TotalAppointments,
		CompletedAppointments: snap.CompletedAppointments,
		CancelledAppointments: snap.CancelledAppointments,
		NoShowAppointments:    snap.NoShowAppointments,
		LifetimeValueCents:    snap.LifetimeValueCents,
	}

	return client.Reconstruct(snap.ID, snap.Name, snap.Email, status, history, snap.Version), nil
}

func serviceFromSnapshot(snap *shared.ServiceSnapshot) (*service.Service, error) {
	svc, err := service.Reconstruct(
		snap.ID,
		snap.Name,
		snap.DurationMinutes,
		snap.PriceCents,
		snap.Currency,
		barber.SpecialtiesFromStrings(snap.RequiredSkills),
		snap.IsActive,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return svc, nil
}

func appointmentFromSnapshot(snap *shared.AppointmentSnapshot) (*appointment.Appointment, error) {
	slot, err := appointment.NewSlot(snap.StartTime, snap.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	status, err := appointment.NewStatus(snap.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	payment := appointment.ReconstructPayment(
		snap.PaymentCents,
		snap.PaymentCurrency,
		appointment.PaymentStatus(snap.PaymentStatus),
		appointment.PaymentMethod(snap.PaymentMethod),
	)

	return appointment.ReconstructAppointment(
		snap.ID, snap.BarberID, snap.ClientID, snap.ServiceID,
		slot,
		status,
		payment,
		appointment.NewNote(snap.Notes), appointment.NewNote(snap.CancelReason),
		snap.StartedAt, snap.CompletedAt, snap.CancelledAt,
		snap.CreatedAt, snap.UpdatedAt,
		snap.Version,
	), nil
}
