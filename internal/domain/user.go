package domain

import "time"

// Role enumerates supported account roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a household account with a registered meter.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	MeterNumber string    `json:"meterNumber"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user may access administrative endpoints.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
