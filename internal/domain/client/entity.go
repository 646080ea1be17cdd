package client

import (
	"barbershop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errs.New("invalid client status")

// History carries the lifetime counters that completion and no-show flows
// update. All counts are monotonically increasing.
type History struct {
	TotalAppointments     int32
	CompletedAppointments int32
	CancelledAppointments int32
	NoShowAppointments    int32
	LifetimeValueCents    int64
}

func (h History) LoyaltyTier() LoyaltyTier {
	switch {
	case h.CompletedAppointments >= 50:
		return TierPlatinum
	case h.CompletedAppointments >= 25:
		return TierGold
	case h.CompletedAppointments >= 10:
		return TierSilver
	default:
		return TierBronze
	}
}

type Client struct {
	id      uuid.UUID
	name    string
	email   string
	status  Status
	history History
	version int32
}

func Reconstruct(id uuid.UUID, name, email string, status Status, history History, version int32) *Client {
	return &Client{
		id:      id,
		name:    name,
		email:   email,
		status:  status,
		history: history,
		version: version,
	}
}

func (c *Client) ID() uuid.UUID    { return c.id }
func (c *Client) Name() string     { return c.name }
func (c *Client) Email() string    { return c.email }
func (c *Client) Status() Status   { return c.status }
func (c *Client) History() History { return c.history }
func (c *Client) Version() int32   { return c.version }

func (c *Client) LoyaltyTier() LoyaltyTier {
	return c.history.LoyaltyTier()
}

// Only active clients may book.
func (c *Client) CanBook() bool {
	return c.status == StatusActive
}

func (c *Client) RecordBooking() {
	c.history.TotalAppointments++
}

func (c *Client) RecordCompleted(amountCents int64) {
	c.history.CompletedAppointments++
	c.history.LifetimeValueCents += amountCents
}

func (c *Client) RecordNoShow() {
	c.history.NoShowAppointments++
}

func (c *Client) RecordCancellation() {
	c.history.CancelledAppointments++
}
