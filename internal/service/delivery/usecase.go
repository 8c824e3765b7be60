package delivery

import (
	"context"
	"math"
	"strings"
	"time"

	"parcel-tracking-service/internal/apperr"
	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/logx"
	"parcel-tracking-service/internal/ports/deliverytx"
)

const topCityLimit = 5

// Service - service for managing parcel deliveries.
type Service struct {
	repo             deliveryRepository
	issuer           codeIssuer
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService - creates a new delivery Service.
func NewService(r deliveryRepository, issuer codeIssuer, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		issuer:           issuer,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateCreate validates a delivery for creation.
func validateCreate(in *domain.NewDeliveryInput) error {
	required := []string{
		in.SenderName, in.SenderAddress, in.SenderCity,
		in.RecipientName, in.RecipientAddress, in.RecipientCity,
		in.ProductType,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return apperr.Invalid
		}
	}
	if in.Weight != nil && *in.Weight <= 0 {
		return apperr.Invalid
	}
	if in.DeclaredValue != nil && *in.DeclaredValue < 0 {
		return apperr.Invalid
	}
	return nil
}

// Create issues a tracking code and persists a new pending delivery.
func (s *Service) Create(ctx context.Context, in domain.NewDeliveryInput) (*domain.Delivery, error) {
	if err := validateCreate(&in); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	code, err := s.issuer.Issue(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	d := &domain.Delivery{
		TrackingCode:     code,
		SenderName:       in.SenderName,
		SenderAddress:    in.SenderAddress,
		SenderCity:       in.SenderCity,
		RecipientName:    in.RecipientName,
		RecipientAddress: in.RecipientAddress,
		RecipientCity:    in.RecipientCity,
		ProductType:      in.ProductType,
		Weight:           in.Weight,
		DeclaredValue:    in.DeclaredValue,
		Notes:            in.Notes,
		Status:           domain.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
		UserID:           in.UserID,
	}

	err = s.repo.WithTx(ctx, func(tx deliverytx.Repository) error {
		return tx.InsertDelivery(ctx, d)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("delivery created",
		logx.String("event", "delivery_created"),
		logx.String("tracking_code", d.TrackingCode),
		logx.String("product", d.ProductType),
		logx.String("route", d.SenderCity+" → "+d.RecipientCity),
	)

	return d, nil
}

// GetByCode retrieves a delivery by its tracking code.
func (s *Service) GetByCode(ctx context.Context, code string) (*domain.Delivery, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.NotFound
	}
	return d, nil
}

// List returns all deliveries, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Delivery, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx)
}

// UpdateStatus moves the delivery identified by code to the given status
// and bumps its update timestamp. Transitions are not ordered: any
// updatable status may follow any other.
func (s *Service) UpdateStatus(ctx context.Context, code string, status domain.DeliveryStatus) (*domain.StatusUpdateResult, error) {
	if !status.Updatable() {
		return nil, apperr.Invalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	updatedAt := s.now()
	var result *domain.StatusUpdateResult
	err := s.repo.WithTx(ctx, func(tx deliverytx.Repository) error {
		res, err := tx.UpdateStatusByCode(ctx, code, status, updatedAt)
		if err != nil {
			return err
		}
		if res == nil {
			return apperr.NotFound
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("delivery status updated",
		logx.String("event", "status_updated"),
		logx.String("tracking_code", result.TrackingCode),
		logx.String("status", string(result.Status)),
	)

	return result, nil
}

// QuickStats computes the summary served by the statistics endpoint.
func (s *Service) QuickStats(ctx context.Context) (*domain.QuickStats, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	topCities, err := s.repo.TopRecipientCities(ctx, topCityLimit)
	if err != nil {
		return nil, err
	}

	stats := &domain.QuickStats{
		TotalDeliveries: total,
		ByStatus:        byStatus,
		TopCities:       topCities,
	}
	if total > 0 {
		rate := float64(byStatus[domain.StatusDelivered]) / float64(total) * 100
		stats.SuccessRate = math.Round(rate*100) / 100
	}
	return stats, nil
}
