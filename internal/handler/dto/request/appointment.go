package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	BarberID      uuid.UUID `json:"barber_id" binding:"required"`
	ClientID      uuid.UUID `json:"client_id" binding:"required"`
	ServiceID     uuid.UUID `json:"service_id" binding:"required"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	Notes         *string   `json:"notes,omitempty"`
	PaymentMethod *string   `json:"payment_method,omitempty"`
}

func (r CreateAppointmentRequest) GetNotes() *string {
	return trimmed(r.Notes)
}

func (r CreateAppointmentRequest) GetPaymentMethod() *string {
	return trimmed(r.PaymentMethod)
}

type RescheduleAppointmentRequest struct {
	NewStartTime time.Time  `json:"new_start_time" binding:"required"`
	NewBarberID  *uuid.UUID `json:"new_barber_id,omitempty"`
}

type CancelAppointmentRequest struct {
	Reason *string `json:"reason,omitempty"`
}

func (r CancelAppointmentRequest) GetReason() *string {
	return trimmed(r.Reason)
}

type CompleteAppointmentRequest struct {
	Notes *string `json:"notes,omitempty"`
}

func (r CompleteAppointmentRequest) GetNotes() *string {
	return trimmed(r.Notes)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
