package appointment

import (
	"fmt"
	"strings"
	"time"
)

// Slot is a half-open time interval [start, end) occupied by one appointment.
type Slot struct {
	start time.Time
	end   time.Time
}

func NewSlot(start, end time.Time) (Slot, error) {
	if !start.Before(end) {
		return Slot{}, ErrInvalidSlot
	}

	return Slot{
		start: start,
		end:   end,
	}, nil
}

func (s Slot) Start() time.Time {
	return s.start
}

func (s Slot) End() time.Time {
	return s.end
}

func (s Slot) Duration() time.Duration {
	return s.end.Sub(s.start)
}

// Overlaps reports whether two half-open intervals intersect. Slots that merely
// touch (one ending exactly when the other starts) do not overlap, so
// back-to-back bookings are always admitted.
func (s Slot) Overlaps(other Slot) bool {
	return s.start.Before(other.end) && s.end.After(other.start)
}

func (s Slot) Equal(other Slot) bool {
	return s.start.Equal(other.start) && s.end.Equal(other.end)
}

func (s Slot) String() string {
	return fmt.Sprintf("[%s,%s)", s.start.Format(time.RFC3339), s.end.Format(time.RFC3339))
}

// PaymentInfo is owned by the appointment aggregate; the gateway that settles
// it is a collaborator and never mutates this value directly.
type PaymentInfo struct {
	amountCents int64
	currency    string
	status      PaymentStatus
	method      PaymentMethod
}

func NewPendingPayment(amountCents int64, currency string, method PaymentMethod) (PaymentInfo, error) {
	if amountCents < 0 {
		return PaymentInfo{}, ErrNegativeAmount
	}
	if currency == "" {
		return PaymentInfo{}, ErrMissingCurrency
	}

	return PaymentInfo{
		amountCents: amountCents,
		currency:    currency,
		status:      PaymentPending,
		method:      method,
	}, nil
}

func ReconstructPayment(amountCents int64, currency string, status PaymentStatus, method PaymentMethod) PaymentInfo {
	return PaymentInfo{
		amountCents: amountCents,
		currency:    currency,
		status:      status,
		method:      method,
	}
}

func (p PaymentInfo) AmountCents() int64    { return p.amountCents }
func (p PaymentInfo) Currency() string      { return p.currency }
func (p PaymentInfo) Status() PaymentStatus { return p.status }
func (p PaymentInfo) Method() PaymentMethod { return p.method }

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
