package service

import (
	"time"

	"barbershop-api/internal/domain/barber"
	"barbershop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration = errs.New("service duration must be positive")
	ErrNegativePrice   = errs.New("service price cannot be negative")
)

// Service is a referenced aggregate: its duration sizes the slot and its price
// seeds the appointment's payment.
type Service struct {
	id             uuid.UUID
	name           string
	durationMin    int32
	priceCents     int64
	currency       string
	requiredSkills []barber.Specialty
	active         bool
}

func Reconstruct(
	id uuid.UUID,
	name string,
	durationMin int32,
	priceCents int64,
	currency string,
	requiredSkills []barber.Specialty,
	active bool,
) (*Service, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Service{
		id:             id,
		name:           name,
		durationMin:    durationMin,
		priceCents:     priceCents,
		currency:       currency,
		requiredSkills: requiredSkills,
		active:         active,
	}, nil
}

func (s *Service) ID() uuid.UUID                      { return s.id }
func (s *Service) Name() string                       { return s.name }
func (s *Service) DurationMinutes() int32             { return s.durationMin }
func (s *Service) PriceCents() int64                  { return s.priceCents }
func (s *Service) Currency() string                   { return s.currency }
func (s *Service) RequiredSkills() []barber.Specialty { return s.requiredSkills }
func (s *Service) IsActive() bool                     { return s.active }

func (s *Service) Duration() time.Duration {
	return time.Duration(s.durationMin) * time.Minute
}
