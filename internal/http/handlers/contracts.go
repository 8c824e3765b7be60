package handlers

import (
	"context"

	"parcel-tracking-service/internal/auth"
	"parcel-tracking-service/internal/domain"
)

// deliveryUsecase is the delivery service surface the handlers depend on.
type deliveryUsecase interface {
	Create(ctx context.Context, in domain.NewDeliveryInput) (*domain.Delivery, error)
	GetByCode(ctx context.Context, code string) (*domain.Delivery, error)
	List(ctx context.Context) ([]domain.Delivery, error)
	UpdateStatus(ctx context.Context, code string, status domain.DeliveryStatus) (*domain.StatusUpdateResult, error)
	QuickStats(ctx context.Context) (*domain.QuickStats, error)
}

// authService is the login guard surface the handlers depend on.
type authService interface {
	Login(ctx context.Context, clientID, username, password string) (auth.Session, error)
	Validate(token string) (auth.Session, error)
	Logout(token string)
}
