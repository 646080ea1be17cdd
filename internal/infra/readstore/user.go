package readstore

import (
	"context"

	"barbershop-api/internal/infra"
	"barbershop-api/internal/infra/db"
	"barbershop-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const userByIDQuery = `
SELECT id, email, role, is_active
FROM users
WHERE id = $1`

const userByEmailQuery = `
SELECT id, email, role, is_active, password_hash
FROM users
WHERE email = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, userByIDQuery, id).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err, infra.Classify(err))
	}
	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, userByEmailQuery, email).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive, &hash)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err, infra.Classify(err))
	}
	return &view, hash, nil
}
