//go:build unit

package barber_test

import (
	"testing"
	"time"

	"barbershop-api/internal/domain/appointment"
	"barbershop-api/internal/domain/barber"
	"barbershop-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkingWindow(t *testing.T) {
	cases := []struct {
		name     string
		startMin int
		endMin   int
		errIs    error
	}{
		{name: "regular shift", startMin: 9 * 60, endMin: 18 * 60},
		{name: "full day", startMin: 0, endMin: 24 * 60},
		{name: "negative start", startMin: -1, endMin: 18 * 60, errIs: barber.ErrInvalidWindow},
		{name: "end past midnight", startMin: 9 * 60, endMin: 24*60 + 1, errIs: barber.ErrInvalidWindow},
		{name: "start equals end", startMin: 9 * 60, endMin: 9 * 60, errIs: barber.ErrInvalidWindow},
		{name: "start after end", startMin: 18 * 60, endMin: 9 * 60, errIs: barber.ErrInvalidWindow},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			window, err := barber.NewWorkingWindow(c.startMin, c.endMin)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.startMin, window.StartMinutes())
			assert.Equal(t, c.endMin, window.EndMinutes())
		})
	}
}

func TestCanTakeAppointments(t *testing.T) {
	active, err := builder.NewBarberBuilder().BuildDomain()
	require.NoError(t, err)
	assert.True(t, active.CanTakeAppointments())

	for _, status := range []string{"inactive", "on_leave", "suspended"} {
		t.Run(status, func(t *testing.T) {
			b, err := builder.NewBarberBuilder().With(func(b *builder.BarberBuilder) { b.Status = status }).BuildDomain()
			require.NoError(t, err)
			assert.False(t, b.CanTakeAppointments())
		})
	}
}

func TestMissingSkills(t *testing.T) {
	b, err := builder.NewBarberBuilder().WithSpecialties("haircut", "beard_trim").BuildDomain()
	require.NoError(t, err)

	t.Run("all skills covered", func(t *testing.T) {
		assert.Empty(t, b.MissingSkills([]barber.Specialty{barber.SpecialtyHaircut}))
	})

	t.Run("no required skills", func(t *testing.T) {
		assert.Empty(t, b.MissingSkills(nil))
	})

	t.Run("reports each uncovered skill", func(t *testing.T) {
		missing := b.MissingSkills([]barber.Specialty{barber.SpecialtyHaircut, barber.SpecialtyColoring, barber.SpecialtyKidsCut})
		assert.Equal(t, []barber.Specialty{barber.SpecialtyColoring, barber.SpecialtyKidsCut}, missing)
	})
}

func TestWorksDuring(t *testing.T) {
	// Monday through Saturday, 09:00-18:00.
	b, err := builder.NewBarberBuilder().BuildDomain()
	require.NoError(t, err)

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())
	sunday := monday.AddDate(0, 0, -1)

	slotAt := func(t *testing.T, day time.Time, hour, min, durationMin int) appointment.Slot {
		t.Helper()
		start := day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
		slot, err := appointment.NewSlot(start, start.Add(time.Duration(durationMin)*time.Minute))
		require.NoError(t, err)
		return slot
	}

	cases := []struct {
		name  string
		slot  appointment.Slot
		works bool
	}{
		{name: "mid-day slot", slot: slotAt(t, monday, 10, 0, 30), works: true},
		{name: "slot starting at opening", slot: slotAt(t, monday, 9, 0, 30), works: true},
		{name: "slot ending exactly at closing", slot: slotAt(t, monday, 17, 30, 30), works: true},
		{name: "slot starting before opening", slot: slotAt(t, monday, 8, 30, 60), works: false},
		{name: "slot running past closing", slot: slotAt(t, monday, 17, 45, 30), works: false},
		{name: "day off", slot: slotAt(t, sunday, 10, 0, 30), works: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.works, b.WorksDuring(c.slot))
		})
	}

	t.Run("short shift", func(t *testing.T) {
		shortDay, err := builder.NewBarberBuilder().
			WithWorkingDay(time.Monday, 14*60, 16*60).
			BuildDomain()
		require.NoError(t, err)

		assert.True(t, shortDay.WorksDuring(slotAt(t, monday, 14, 0, 60)))
		assert.False(t, shortDay.WorksDuring(slotAt(t, monday, 13, 30, 60)))
		assert.False(t, shortDay.WorksDuring(slotAt(t, monday, 15, 30, 60)))
	})
}
