package payment

import (
	"context"
	"log/slog"

	"barbershop-api/internal/pkg/errs"
	"barbershop-api/internal/usecase/commands"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrPaymentRejected = errs.New("payment rejected")

// MercadoPagoGateway charges online payments. Cash and card are settled at
// the front desk, so those methods are a no-op here.
type MercadoPagoGateway struct {
	client mppayment.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, errs.Wrap(err, "failed to configure mercado pago")
	}
	return &MercadoPagoGateway{client: mppayment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CollectPayment(ctx context.Context, req commands.PaymentRequest) error {
	if req.Method != "mercado_pago" {
		return nil
	}

	resource, err := g.client.Create(ctx, mppayment.Request{
		TransactionAmount: float64(req.AmountCents) / 100,
		Description:       req.Description,
		Payer: &mppayment.PayerRequest{
			Email: req.PayerEmail,
		},
	})
	if err != nil {
		return errs.Wrap(err, "failed to create mercado pago payment")
	}

	if resource.Status == "rejected" {
		return ErrPaymentRejected
	}

	slog.Info("payment created",
		"appointment_id", req.AppointmentID,
		"mp_payment_id", resource.ID,
		"status", resource.Status)
	return nil
}

// NoopGateway is used when no payment credentials are configured.
type NoopGateway struct{}

func (NoopGateway) CollectPayment(ctx context.Context, req commands.PaymentRequest) error {
	slog.Debug("payment gateway disabled, skipping collection", "appointment_id", req.AppointmentID)
	return nil
}
