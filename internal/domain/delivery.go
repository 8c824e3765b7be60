package domain

import "time"

// Delivery - struct representing a parcel delivery record.
type Delivery struct {
	ID            int64
	TrackingCode  string
	SenderName    string
	SenderAddress string
	SenderCity    string

	RecipientName    string
	RecipientAddress string
	RecipientCity    string

	ProductType   string
	Weight        *float64
	DeclaredValue *float64
	Notes         string

	Status    DeliveryStatus
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    *int64
}

// NewDeliveryInput carries the caller-supplied fields for a new delivery.
// Tracking code, status and timestamps are assigned by the service.
type NewDeliveryInput struct {
	SenderName    string
	SenderAddress string
	SenderCity    string

	RecipientName    string
	RecipientAddress string
	RecipientCity    string

	ProductType   string
	Weight        *float64
	DeclaredValue *float64
	Notes         string
	UserID        *int64
}

// StatusUpdateResult - struct representing the result of a status change.
type StatusUpdateResult struct {
	TrackingCode string
	Status       DeliveryStatus
	UpdatedAt    time.Time
}
