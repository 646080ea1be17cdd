//go:build unit

package client_test

import (
	"testing"

	"barbershop-api/internal/domain/client"
	"barbershop-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanBook(t *testing.T) {
	active, err := builder.NewClientBuilder().BuildDomain()
	require.NoError(t, err)
	assert.True(t, active.CanBook())

	inactive, err := builder.NewClientBuilder().AsInactive().BuildDomain()
	require.NoError(t, err)
	assert.False(t, inactive.CanBook())

	blocked, err := builder.NewClientBuilder().AsBlocked().BuildDomain()
	require.NoError(t, err)
	assert.False(t, blocked.CanBook())
}

func TestLoyaltyTier(t *testing.T) {
	cases := []struct {
		completed int32
		tier      client.LoyaltyTier
	}{
		{completed: 0, tier: client.TierBronze},
		{completed: 9, tier: client.TierBronze},
		{completed: 10, tier: client.TierSilver},
		{completed: 24, tier: client.TierSilver},
		{completed: 25, tier: client.TierGold},
		{completed: 49, tier: client.TierGold},
		{completed: 50, tier: client.TierPlatinum},
		{completed: 120, tier: client.TierPlatinum},
	}

	for _, c := range cases {
		t.Run(c.tier.String(), func(t *testing.T) {
			cl, err := builder.NewClientBuilder().WithCompleted(c.completed).BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, c.tier, cl.LoyaltyTier())
		})
	}
}

func TestHistoryCounters(t *testing.T) {
	cl, err := builder.NewClientBuilder().BuildDomain()
	require.NoError(t, err)

	cl.RecordBooking()
	cl.RecordBooking()
	cl.RecordCompleted(1500)
	cl.RecordCancellation()
	cl.RecordNoShow()

	history := cl.History()
	assert.Equal(t, int32(2), history.TotalAppointments)
	assert.Equal(t, int32(1), history.CompletedAppointments)
	assert.Equal(t, int32(1), history.CancelledAppointments)
	assert.Equal(t, int32(1), history.NoShowAppointments)
	assert.Equal(t, int64(1500), history.LifetimeValueCents)
}

func TestLifetimeValueAccumulates(t *testing.T) {
	cl, err := builder.NewClientBuilder().BuildDomain()
	require.NoError(t, err)

	cl.RecordCompleted(1000)
	cl.RecordCompleted(2500)

	assert.Equal(t, int64(3500), cl.History().LifetimeValueCents)
	assert.Equal(t, int32(2), cl.History().CompletedAppointments)
}

func TestInvalidStatus(t *testing.T) {
	_, err := client.NewStatus("banned")
	require.ErrorIs(t, err, client.ErrInvalidStatus)
}
