package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"parcel-tracking-service/internal/apperr"
	"parcel-tracking-service/internal/domain"
)

// UserRepo represents operator account repository.
type UserRepo struct{ db *pgxpool.Pool }

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo { return &UserRepo{db: db} }

// GetActiveByUsername returns the active account with the given username, or nil.
func (r *UserRepo) GetActiveByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, `
        SELECT id, username, password_hash, perfil, ativo, data_criacao
        FROM usuarios
        WHERE username = $1 AND ativo = TRUE
    `, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return &u, nil
}

// Create - creates a new operator account.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO usuarios (username, password_hash, perfil, ativo)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, u.Username, u.PasswordHash, u.Role, u.Active).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.Conflict
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}
