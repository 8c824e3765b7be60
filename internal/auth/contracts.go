package auth

import (
	"context"

	"parcel-tracking-service/internal/domain"
)

// userRepository looks up operator accounts for credential checks.
type userRepository interface {
	GetActiveByUsername(ctx context.Context, username string) (*domain.User, error)
}
