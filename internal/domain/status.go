package domain

import "regexp"

// List of possible delivery statuses
const (
	StatusPending   DeliveryStatus = "pendente"
	StatusCollected DeliveryStatus = "coletado"
	StatusInTransit DeliveryStatus = "em_transito"
	StatusDelivered DeliveryStatus = "entregue"
	StatusReturned  DeliveryStatus = "devolvida"
	StatusCancelled DeliveryStatus = "cancelado"
)

// DeliveryStatus is the current lifecycle state of a delivery.
type DeliveryStatus string

// List of valid stored statuses
var allowedStatuses = [...]DeliveryStatus{
	StatusPending, StatusCollected, StatusInTransit,
	StatusDelivered, StatusReturned, StatusCancelled,
}

// Statuses an operator may set through the status-update operation.
// devolvida is a valid stored value but is not settable via the API.
var updatableStatuses = [...]DeliveryStatus{
	StatusPending, StatusCollected, StatusInTransit,
	StatusDelivered, StatusCancelled,
}

// Valid checks if the DeliveryStatus is a known stored value.
func (s DeliveryStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Updatable checks if the DeliveryStatus may be set via a status update.
func (s DeliveryStatus) Updatable() bool {
	for _, v := range updatableStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// UpdatableStatuses returns the statuses accepted by the status-update operation.
func UpdatableStatuses() []DeliveryStatus {
	out := make([]DeliveryStatus, len(updatableStatuses))
	copy(out, updatableStatuses[:])
	return out
}

// reTrackingCode is a regex to validate tracking codes: fixed prefix plus digits.
var reTrackingCode = regexp.MustCompile(`^EI[0-9]{10}$`)

// ValidateTrackingCode validates the tracking code format.
func ValidateTrackingCode(s string) bool {
	return reTrackingCode.MatchString(s)
}
