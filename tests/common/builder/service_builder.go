//go:build unit || e2e

package builder

import (
	"barbershop-api/internal/domain/barber"
	"barbershop-api/internal/domain/service"
	"barbershop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int32
	PriceCents      int64
	Currency        string
	RequiredSkills  []string
	Active          bool
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:              uuid.New(),
		Name:            "Classic Cut",
		DurationMinutes: 30,
		PriceCents:      1500,
		Currency:        "ARS",
		RequiredSkills:  []string{"haircut"},
		Active:          true,
	}
}

func (s *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *ServiceBuilder) BuildDomain() (*service.Service, error) {
	return service.Reconstruct(
		s.ID,
		s.Name,
		s.DurationMinutes,
		s.PriceCents,
		s.Currency,
		barber.SpecialtiesFromStrings(s.RequiredSkills),
		s.Active,
	)
}

func (s *ServiceBuilder) BuildSnapshot() *shared.ServiceSnapshot {
	return &shared.ServiceSnapshot{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		PriceCents:      s.PriceCents,
		Currency:        s.Currency,
		RequiredSkills:  s.RequiredSkills,
		IsActive:        s.Active,
	}
}

// Fluent builder methods
func (s *ServiceBuilder) WithID(id uuid.UUID) *ServiceBuilder {
	s.ID = id
	return s
}

func (s *ServiceBuilder) WithDuration(minutes int32) *ServiceBuilder {
	s.DurationMinutes = minutes
	return s
}

func (s *ServiceBuilder) WithPrice(cents int64) *ServiceBuilder {
	s.PriceCents = cents
	return s
}

func (s *ServiceBuilder) WithRequiredSkills(skills ...string) *ServiceBuilder {
	s.RequiredSkills = skills
	return s
}

func (s *ServiceBuilder) AsInactive() *ServiceBuilder {
	s.Active = false
	return s
}
