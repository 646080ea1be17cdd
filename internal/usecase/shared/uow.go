package shared

import (
	"context"
	"time"

	"barbershop-api/internal/domain/appointment"
	"barbershop-api/internal/domain/client"
	"barbershop-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Clients() ClientRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	BarberByID(ctx context.Context, id uuid.UUID) (*BarberSnapshot, error)
	ClientByID(ctx context.Context, id uuid.UUID) (*ClientSnapshot, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	AppointmentByID(ctx context.Context, id uuid.UUID) (*AppointmentSnapshot, error)
	// FindConflicting returns active appointments of the barber whose slots
	// overlap [start, end). Cancelled and no-show appointments never block.
	// It locks the barber row for the rest of the transaction, so concurrent
	// bookings for the same barber cannot both see a free slot.
	FindConflicting(ctx context.Context, barberID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]ConflictingAppointment, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, db db.DBTX, a *appointment.Appointment) error
	// Update persists the aggregate only if the stored version still matches
	// the version it was loaded at, and bumps the version on success.
	Update(ctx context.Context, db db.DBTX, a *appointment.Appointment) error
}

type ClientRepository interface {
	UpdateHistory(ctx context.Context, db db.DBTX, c *client.Client) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, db db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, db db.DBTX, userID uuid.UUID) error
}
