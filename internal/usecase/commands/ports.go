package commands

import (
	"context"

	"github.com/google/uuid"
)

// PaymentGateway is invoked with plain data after a state transition.
// Failures are logged by the caller and never roll back the transition.
type PaymentGateway interface {
	CollectPayment(ctx context.Context, req PaymentRequest) error
}

type PaymentRequest struct {
	AppointmentID uuid.UUID
	AmountCents   int64
	Currency      string
	Method        string
	Description   string
	PayerEmail    string
}
