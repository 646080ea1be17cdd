//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"barbershop-api/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, start, end time.Time) appointment.Slot {
	t.Helper()
	slot, err := appointment.NewSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestSlot(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("valid slot", func(t *testing.T) {
		slot, err := appointment.NewSlot(base, base.Add(30*time.Minute))
		require.NoError(t, err)

		assert.Equal(t, base, slot.Start())
		assert.Equal(t, base.Add(30*time.Minute), slot.End())
		assert.Equal(t, 30*time.Minute, slot.Duration())
	})

	t.Run("start must precede end", func(t *testing.T) {
		_, err := appointment.NewSlot(base, base)
		require.ErrorIs(t, err, appointment.ErrInvalidSlot)

		_, err = appointment.NewSlot(base.Add(time.Hour), base)
		require.ErrorIs(t, err, appointment.ErrInvalidSlot)
	})

	t.Run("overlap detection", func(t *testing.T) {
		slot := mustSlot(t, base, base.Add(30*time.Minute))

		cases := []struct {
			name     string
			other    appointment.Slot
			overlaps bool
		}{
			{
				name:     "identical slots overlap",
				other:    mustSlot(t, base, base.Add(30*time.Minute)),
				overlaps: true,
			},
			{
				name:     "partial overlap at tail",
				other:    mustSlot(t, base.Add(15*time.Minute), base.Add(45*time.Minute)),
				overlaps: true,
			},
			{
				name:     "partial overlap at head",
				other:    mustSlot(t, base.Add(-15*time.Minute), base.Add(15*time.Minute)),
				overlaps: true,
			},
			{
				name:     "containment overlaps",
				other:    mustSlot(t, base.Add(5*time.Minute), base.Add(25*time.Minute)),
				overlaps: true,
			},
			{
				name:     "back-to-back after does not overlap",
				other:    mustSlot(t, base.Add(30*time.Minute), base.Add(60*time.Minute)),
				overlaps: false,
			},
			{
				name:     "back-to-back before does not overlap",
				other:    mustSlot(t, base.Add(-30*time.Minute), base),
				overlaps: false,
			},
			{
				name:     "disjoint does not overlap",
				other:    mustSlot(t, base.Add(2*time.Hour), base.Add(3*time.Hour)),
				overlaps: false,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.Equal(t, c.overlaps, slot.Overlaps(c.other))
				assert.Equal(t, c.overlaps, c.other.Overlaps(slot), "overlap must be symmetric")
			})
		}
	})
}

func TestPaymentInfo(t *testing.T) {
	t.Run("new payment starts pending", func(t *testing.T) {
		payment, err := appointment.NewPendingPayment(1500, "ARS", appointment.MethodCash)
		require.NoError(t, err)

		assert.Equal(t, int64(1500), payment.AmountCents())
		assert.Equal(t, "ARS", payment.Currency())
		assert.Equal(t, appointment.PaymentPending, payment.Status())
		assert.Equal(t, appointment.MethodCash, payment.Method())
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		_, err := appointment.NewPendingPayment(0, "ARS", appointment.MethodCash)
		require.NoError(t, err)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := appointment.NewPendingPayment(-1, "ARS", appointment.MethodCash)
		require.ErrorIs(t, err, appointment.ErrNegativeAmount)
	})

	t.Run("currency required", func(t *testing.T) {
		_, err := appointment.NewPendingPayment(1500, "", appointment.MethodCash)
		require.ErrorIs(t, err, appointment.ErrMissingCurrency)
	})
}

func TestNote(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		note := appointment.NewNote("  prefers scissors  ")
		assert.Equal(t, "prefers scissors", note.String())
		assert.False(t, note.IsEmpty())
	})

	t.Run("whitespace only is empty", func(t *testing.T) {
		assert.True(t, appointment.NewNote("   ").IsEmpty())
		assert.True(t, appointment.NewNote("").IsEmpty())
	})
}
