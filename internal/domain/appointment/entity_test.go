//go:build unit

package appointment_test

import (
	"errors"
	"testing"
	"time"

	"barbershop-api/internal/domain/appointment"
	"barbershop-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildInStatus(t *testing.T, status string) *appointment.Appointment {
	t.Helper()
	agg, err := builder.NewAppointmentBuilder().WithStatus(status).BuildDomain()
	require.NoError(t, err)
	return agg
}

func TestNewAppointment(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	slot, err := appointment.NewSlot(now.Add(time.Hour), now.Add(90*time.Minute))
	require.NoError(t, err)
	payment, err := appointment.NewPendingPayment(1500, "ARS", appointment.MethodCash)
	require.NoError(t, err)

	agg := appointment.NewAppointment(uuid.New(), uuid.New(), uuid.New(), slot, payment, appointment.NewNote(""), now)

	assert.NotEqual(t, uuid.Nil, agg.ID())
	assert.Equal(t, appointment.StatusPending, agg.Status())
	assert.Equal(t, appointment.PaymentPending, agg.Payment().Status())
	assert.Equal(t, now, agg.CreatedAt())
	assert.Equal(t, int32(1), agg.Version())
	assert.True(t, agg.IsActive())
	assert.Nil(t, agg.StartedAt())
}

func TestTransitions(t *testing.T) {
	now := time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)

	// Allowed source statuses per operation; every other status must refuse
	// the transition and leave the aggregate untouched.
	grid := []struct {
		operation string
		apply     func(*appointment.Appointment) error
		allowed   []string
	}{
		{
			operation: "confirm",
			apply:     func(a *appointment.Appointment) error { return a.Confirm() },
			allowed:   []string{"pending"},
		},
		{
			operation: "start",
			apply:     func(a *appointment.Appointment) error { return a.Start(now) },
			allowed:   []string{"confirmed"},
		},
		{
			operation: "complete",
			apply:     func(a *appointment.Appointment) error { return a.Complete(appointment.NewNote(""), now) },
			allowed:   []string{"confirmed", "in_progress"},
		},
		{
			operation: "cancel",
			apply:     func(a *appointment.Appointment) error { return a.Cancel(appointment.NewNote("sick"), now) },
			allowed:   []string{"pending", "confirmed"},
		},
		{
			operation: "no-show",
			apply:     func(a *appointment.Appointment) error { return a.MarkNoShow(now) },
			allowed:   []string{"confirmed", "in_progress"},
		},
	}

	allStatuses := []string{"pending", "confirmed", "in_progress", "completed", "cancelled", "no_show"}

	for _, g := range grid {
		t.Run(g.operation, func(t *testing.T) {
			for _, status := range allStatuses {
				t.Run("from "+status, func(t *testing.T) {
					agg := buildInStatus(t, status)
					err := g.apply(agg)

					allowed := false
					for _, a := range g.allowed {
						if a == status {
							allowed = true
						}
					}

					if allowed {
						require.NoError(t, err)
						return
					}

					require.ErrorIs(t, err, appointment.ErrInvalidTransition)

					var transitionErr *appointment.InvalidTransitionError
					require.ErrorAs(t, err, &transitionErr)
					assert.Equal(t, status, transitionErr.From.String())
					assert.Equal(t, status, agg.Status().String(), "refused transition must not mutate status")
				})
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	agg := buildInStatus(t, "pending")
	require.NoError(t, agg.Confirm())
	assert.Equal(t, appointment.StatusConfirmed, agg.Status())
}

func TestStart(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	agg := buildInStatus(t, "confirmed")
	require.NoError(t, agg.Start(now))

	assert.Equal(t, appointment.StatusInProgress, agg.Status())
	require.NotNil(t, agg.StartedAt())
	assert.Equal(t, now, *agg.StartedAt())
}

func TestComplete(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)

	t.Run("records completion time and notes", func(t *testing.T) {
		agg := buildInStatus(t, "in_progress")
		require.NoError(t, agg.Complete(appointment.NewNote("used clipper #2"), now))

		assert.Equal(t, appointment.StatusCompleted, agg.Status())
		require.NotNil(t, agg.CompletedAt())
		assert.Equal(t, now, *agg.CompletedAt())
		assert.Equal(t, "used clipper #2", agg.Notes().String())
		assert.False(t, agg.IsActive())
	})

	t.Run("empty notes keep the booking notes", func(t *testing.T) {
		agg, err := builder.NewAppointmentBuilder().
			WithStatus("confirmed").
			WithNotes("booked by phone").
			BuildDomain()
		require.NoError(t, err)

		require.NoError(t, agg.Complete(appointment.NewNote(""), now))
		assert.Equal(t, "booked by phone", agg.Notes().String())
	})
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	agg := buildInStatus(t, "confirmed")
	require.NoError(t, agg.Cancel(appointment.NewNote("client travelling"), now))

	assert.Equal(t, appointment.StatusCancelled, agg.Status())
	assert.Equal(t, "client travelling", agg.CancelReason().String())
	require.NotNil(t, agg.CancelledAt())
	assert.Equal(t, now, *agg.CancelledAt())
	assert.False(t, agg.IsActive(), "cancelled appointment frees its slot")
}

func TestMarkNoShow(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC)

	agg := buildInStatus(t, "confirmed")
	require.NoError(t, agg.MarkNoShow(now))

	assert.Equal(t, appointment.StatusNoShow, agg.Status())
	require.NotNil(t, agg.CancelledAt())
	assert.False(t, agg.IsActive())
}

func TestReschedule(t *testing.T) {
	newStart := time.Date(2026, 3, 3, 14, 0, 0, 0, time.UTC)

	t.Run("swaps the slot and preserves status", func(t *testing.T) {
		agg := buildInStatus(t, "confirmed")
		newSlot, err := appointment.NewSlot(newStart, newStart.Add(30*time.Minute))
		require.NoError(t, err)

		require.NoError(t, agg.Reschedule(newSlot))

		assert.True(t, agg.Slot().Equal(newSlot))
		assert.Equal(t, appointment.StatusConfirmed, agg.Status())
	})

	t.Run("refused once in progress", func(t *testing.T) {
		agg := buildInStatus(t, "in_progress")
		newSlot, err := appointment.NewSlot(newStart, newStart.Add(30*time.Minute))
		require.NoError(t, err)

		err = agg.Reschedule(newSlot)
		require.ErrorIs(t, err, appointment.ErrInvalidTransition)
	})
}

func TestReassignBarber(t *testing.T) {
	t.Run("moves a pending appointment", func(t *testing.T) {
		agg := buildInStatus(t, "pending")
		newBarber := uuid.New()

		require.NoError(t, agg.ReassignBarber(newBarber))
		assert.Equal(t, newBarber, agg.BarberID())
	})

	t.Run("refused on terminal appointment", func(t *testing.T) {
		agg := buildInStatus(t, "completed")
		original := agg.BarberID()

		err := agg.ReassignBarber(uuid.New())
		require.Error(t, err)
		assert.True(t, errors.Is(err, appointment.ErrInvalidTransition))
		assert.Equal(t, original, agg.BarberID())
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, appointment.StatusPending.IsTerminal())
	assert.False(t, appointment.StatusConfirmed.IsTerminal())
	assert.False(t, appointment.StatusInProgress.IsTerminal())
	assert.True(t, appointment.StatusCompleted.IsTerminal())
	assert.True(t, appointment.StatusCancelled.IsTerminal())
	assert.True(t, appointment.StatusNoShow.IsTerminal())
}
