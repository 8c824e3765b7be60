package domain

import "time"

// List of operator roles
const (
	RoleAdmin    = "admin"
	RoleOperator = "operador"
)

// User models an operator account of the management console.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	Active       bool
	CreatedAt    time.Time
}
