package delivery

import (
	"context"

	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/ports/deliverytx"
)

// deliveryRepository is the persistence surface the service depends on.
type deliveryRepository interface {
	WithTx(ctx context.Context, fn func(tx deliverytx.Repository) error) error
	GetByCode(ctx context.Context, code string) (*domain.Delivery, error)
	List(ctx context.Context) ([]domain.Delivery, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[domain.DeliveryStatus]int64, error)
	TopRecipientCities(ctx context.Context, limit int) ([]domain.CityCount, error)
}

// codeIssuer produces fresh unique tracking codes.
type codeIssuer interface {
	Issue(ctx context.Context) (string, error)
}
