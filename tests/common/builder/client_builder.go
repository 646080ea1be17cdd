//go:build unit || e2e

package builder

import (
	"barbershop-api/internal/domain/client"
	"barbershop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClientBuilder struct {
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

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		ID:      uuid.New(),
		Name:    "Test Client",
		Email:   "client@example.com",
		Status:  "active",
		Version: 1,
	}
}

func (c *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *ClientBuilder) BuildDomain() (*client.Client, error) {
	status, err := client.NewStatus(c.Status)
	if err != nil {
		return nil, err
	}

	history := client.History{
		TotalAppointments:     c.TotalAppointments,
		CompletedAppointments: c.CompletedAppointments,
		CancelledAppointments: c.CancelledAppointments,
		NoShowAppointments:    c.NoShowAppointments,
		LifetimeValueCents:    c.LifetimeValueCents,
	}

	return client.Reconstruct(c.ID, c.Name, c.Email, status, history, c.Version), nil
}

func (c *ClientBuilder) BuildSnapshot() *shared.ClientSnapshot {
	return &shared.ClientSnapshot{
		ID:                    c.ID,
		Name:                  c.Name,
		Email:                 c.Email,
		Status:                c.Status,
		TotalAppointments:     c.TotalAppointments,
		CompletedAppointments: c.CompletedAppointments,
		CancelledAppointments: c.CancelledAppointments,
		NoShowAppointments:    c.NoShowAppointments,
		LifetimeValueCents:    c.LifetimeValueCents,
		Version:               c.Version,
	}
}

// Fluent builder methods
func (c *ClientBuilder) WithID(id uuid.UUID) *ClientBuilder {
	c.ID = id
	return c
}

func (c *ClientBuilder) WithEmail(email string) *ClientBuilder {
	c.Email = email
	return c
}

func (c *ClientBuilder) WithCompleted(count int32) *ClientBuilder {
	c.CompletedAppointments = count
	if c.TotalAppointments < count {
		c.TotalAppointments = count
	}
	return c
}

func (c *ClientBuilder) AsInactive() *ClientBuilder {
	c.Status = "inactive"
	return c
}

func (c *ClientBuilder) AsBlocked() *ClientBuilder {
	c.Status = "blocked"
	return c
}
