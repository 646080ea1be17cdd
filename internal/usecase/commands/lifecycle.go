package commands

import (
	"context"
	"log/slog"

	"barbershop-api/internal/domain/appointment"
	"barbershop-api/internal/domain/client"
	"barbershop-api/internal/usecase/queries"
	"barbershop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

func (uc *appointmentCommandsImpl) ConfirmAppointment(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	err := uc.transition(ctx, id, "appointment_confirmed", func(tx shared.Tx, agg *appointment.Appointment) error {
		return agg.Confirm()
	})
	if err != nil {
		return nil, err
	}
	return uc.appointmentQueries.GetByID(ctx, id)
}

func (uc *appointmentCommandsImpl) StartAppointment(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	// No notification topic: the client is already in the chair.
	err := uc.transition(ctx, id, "", func(tx shared.Tx, agg *appointment.Appointment) error {
		return agg.Start(uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	return uc.appointmentQueries.GetByID(ctx, id)
}

// CompleteAppointment finalizes the visit and rolls the revenue into the
// client's history inside the same transaction, so the loyalty counters can
// never drift from the appointment record. Payment collection happens after
// commit and its failure never unwinds the completion.
func (uc *appointmentCommandsImpl) CompleteAppointment(ctx context.Context, id uuid.UUID, notes *string) (*queries.AppointmentView, error) {
	var collect *PaymentRequest

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		agg, rerr := uc.loadAppointment(ctx, tx, id)
		if rerr != nil {
			return rerr
		}

		finalNotes := appointment.NewNote("")
		if notes != nil {
			finalNotes = appointment.NewNote(*notes)
		}
		if terr := agg.Complete(finalNotes, uc.clock.Now()); terr != nil {
			return terr
		}
		if werr := tx.Appointments().Update(ctx, tx.DB(), agg); werr != nil {
			return mapWriteErr(werr)
		}

		clientAgg, cerr := uc.loadClient(ctx, tx, agg.ClientID())
		if cerr != nil {
			return cerr
		}
		clientAgg.RecordCompleted(agg.Payment().AmountCents())
		if werr := tx.Clients().UpdateHistory(ctx, tx.DB(), clientAgg); werr != nil {
			return mapWriteErr(werr)
		}

		if agg.Payment().Status() == appointment.PaymentPending {
			collect = &PaymentRequest{
				AppointmentID: agg.ID(),
				AmountCents:   agg.Payment().AmountCents(),
				Currency:      agg.Payment().Currency(),
				Method:        string(agg.Payment().Method()),
				Description:   "barbershop appointment",
				PayerEmail:    clientAgg.Email(),
			}
		}

		return uc.enqueueNotification(ctx, tx, "appointment_completed", agg.ID())
	})
	if err != nil {
		return nil, err
	}

	if collect != nil {
		if perr := uc.gateway.CollectPayment(ctx, *collect); perr != nil {
			slog.Warn("payment collection failed",
				"appointment_id", collect.AppointmentID,
				"method", collect.Method,
				"error", perr.Error(),
			)
		}
	}

	return uc.appointmentQueries.GetByID(ctx, id)
}

func (uc *appointmentCommandsImpl) CancelAppointment(ctx context.Context, id uuid.UUID, reason *string) error {
	var (
		barberID uuid.UUID
		slot     appointment.Slot
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		agg, rerr := uc.loadAppointment(ctx, tx, id)
		if rerr != nil {
			return rerr
		}

		cancelReason := appointment.NewNote("")
		if reason != nil {
			cancelReason = appointment.NewNote(*reason)
		}
		if terr := agg.Cancel(cancelReason, uc.clock.Now()); terr != nil {
			return terr
		}
		if werr := tx.Appointments().Update(ctx, tx.DB(), agg); werr != nil {
			return mapWriteErr(werr)
		}

		clientAgg, cerr := uc.loadClient(ctx, tx, agg.ClientID())
		if cerr != nil {
			return cerr
		}
		clientAgg.RecordCancellation()
		if werr := tx.Clients().UpdateHistory(ctx, tx.DB(), clientAgg); werr != nil {
			return mapWriteErr(werr)
		}

		barberID, slot = agg.BarberID(), agg.Slot()
		return uc.enqueueNotification(ctx, tx, "appointment_cancelled", agg.ID())
	})
	if err != nil {
		return err
	}

	// A cancelled slot is bookable again.
	uc.invalidateAvailability(ctx, barberID, slot.Start())
	return nil
}

func (uc *appointmentCommandsImpl) MarkNoShow(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	var (
		barberID uuid.UUID
		slot     appointment.Slot
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		agg, rerr := uc.loadAppointment(ctx, tx, id)
		if rerr != nil {
			return rerr
		}

		if terr := agg.MarkNoShow(uc.clock.Now()); terr != nil {
			return terr
		}
		if werr := tx.Appointments().Update(ctx, tx.DB(), agg); werr != nil {
			return mapWriteErr(werr)
		}

		clientAgg, cerr := uc.loadClient(ctx, tx, agg.ClientID())
		if cerr != nil {
			return cerr
		}
		clientAgg.RecordNoShow()
		if werr := tx.Clients().UpdateHistory(ctx, tx.DB(), clientAgg); werr != nil {
			return mapWriteErr(werr)
		}

		barberID, slot = agg.BarberID(), agg.Slot()
		// No notification: the client never showed, so there is nobody to tell.
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateAvailability(ctx, barberID, slot.Start())
	return uc.appointmentQueries.GetByID(ctx, id)
}

// transition runs a single-aggregate state change inside one transaction.
func (uc *appointmentCommandsImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	topic string,
	apply func(tx shared.Tx, agg *appointment.Appointment) error,
) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		agg, rerr := uc.loadAppointment(ctx, tx, id)
		if rerr != nil {
			return rerr
		}
		if terr := apply(tx, agg); terr != nil {
			return terr
		}
		if werr := tx.Appointments().Update(ctx, tx.DB(), agg); werr != nil {
			return mapWriteErr(werr)
		}
		if topic == "" {
			return nil
		}
		return uc.enqueueNotification(ctx, tx, topic, agg.ID())
	})
}

func (uc *appointmentCommandsImpl) loadAppointment(ctx context.Context, tx shared.Tx, id uuid.UUID) (*appointment.Appointment, error) {
	snap, err := tx.Reads().AppointmentByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrAppointmentNotFound)
	}
	return appointmentFromSnapshot(snap)
}

func (uc *appointmentCommandsImpl) loadClient(ctx context.Context, tx shared.Tx, id uuid.UUID) (*client.Client, error) {
	snap, err := tx.Reads().ClientByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrClientNotFound)
	}
	return clientFromSnapshot(snap)
}
