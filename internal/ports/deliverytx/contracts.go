package deliverytx

import (
	"context"
	"time"

	"parcel-tracking-service/internal/domain"
)

// Repository is the set of delivery operations available inside a transaction.
// Timestamps always come from the caller so that creation and update times
// share one clock source.
type Repository interface {
	CodeExists(ctx context.Context, code string) (bool, error)
	InsertDelivery(ctx context.Context, d *domain.Delivery) error
	UpdateStatusByCode(ctx context.Context, code string, status domain.DeliveryStatus, updatedAt time.Time) (*domain.StatusUpdateResult, error)
}
