package repository

import (
	"context"

	"barbershop-api/internal/infra"
	"barbershop-api/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const updateLastLoginQuery = `
UPDATE users
SET last_login = now(), updated_at = now()
WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, updateLastLoginQuery, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err, infra.Classify(err))
	}
	return nil
}
