package response

import (
	"time"

	"barbershop-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID            uuid.UUID  `json:"id"`
	BarberID      uuid.UUID  `json:"barberId"`
	BarberName    string     `json:"barberName"`
	ClientID      uuid.UUID  `json:"clientId"`
	ClientName    string     `json:"clientName"`
	ServiceID     uuid.UUID  `json:"serviceId"`
	ServiceName   string     `json:"serviceName"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       time.Time  `json:"endTime"`
	Status        string     `json:"status"`
	AmountCents   int64      `json:"amountCents"`
	Currency      string     `json:"currency"`
	PaymentStatus string     `json:"paymentStatus"`
	PaymentMethod string     `json:"paymentMethod"`
	Notes         *string    `json:"notes,omitempty"`
	CancelReason  *string    `json:"cancelReason,omitempty"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type AppointmentListResponse struct {
	ID          uuid.UUID `json:"id"`
	BarberID    uuid.UUID `json:"barberId"`
	BarberName  string    `json:"barberName"`
	ClientID    uuid.UUID `json:"clientId"`
	ClientName  string    `json:"clientName"`
	ServiceName string    `json:"serviceName"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status"`
	AmountCents int64     `json:"amountCents"`
}

type AvailabilityResponse struct {
	BarberID  uuid.UUID      `json:"barberId"`
	Date      string         `json:"date"`
	FreeSlots []SlotResponse `json:"freeSlots"`
}

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func FromAppointmentView(rm *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            rm.ID,
		BarberID:      rm.BarberID,
		BarberName:    rm.BarberName,
		ClientID:      rm.ClientID,
		ClientName:    rm.ClientName,
		ServiceID:     rm.ServiceID,
		ServiceName:   rm.ServiceName,
		StartTime:     rm.StartTime,
		EndTime:       rm.EndTime,
		Status:        rm.Status,
		AmountCents:   rm.AmountCents,
		Currency:      rm.Currency,
		PaymentStatus: rm.PaymentStatus,
		PaymentMethod: rm.PaymentMethod,
		Notes:         rm.Notes,
		CancelReason:  rm.CancelReason,
		StartedAt:     rm.StartedAt,
		CompletedAt:   rm.CompletedAt,
		CancelledAt:   rm.CancelledAt,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromAppointmentListItem(rm *queries.AppointmentListItem) *AppointmentListResponse {
	return &AppointmentListResponse{
		ID:          rm.ID,
		BarberID:    rm.BarberID,
		BarberName:  rm.BarberName,
		ClientID:    rm.ClientID,
		ClientName:  rm.ClientName,
		ServiceName: rm.ServiceName,
		StartTime:   rm.StartTime,
		EndTime:     rm.EndTime,
		Status:      rm.Status,
		AmountCents: rm.AmountCents,
	}
}

func FromAvailabilityView(rm *queries.AvailabilityView) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(rm.FreeSlots))
	for _, s := range rm.FreeSlots {
		slots = append(slots, SlotResponse{Start: s.Start, End: s.End})
	}
	return &AvailabilityResponse{
		BarberID:  rm.BarberID,
		Date:      rm.Date,
		FreeSlots: slots,
	}
}
