package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleClient Role = "client"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleClient:
		return true
	default:
		return false
	}
}

func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	return role, role.Valid()
}

type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	Role         Role      `json:"role" db:"role"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Listing statuses used for filtering and analytics. Admins may set any
// other non-empty value.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

type Property struct {
	ID           string         `json:"id" db:"id"`
	Title        string         `json:"title" db:"title"`
	Description  string         `json:"description" db:"description"`
	Price        float64        `json:"price" db:"price"`
	Location     string         `json:"location" db:"location"`
	Bedrooms     int            `json:"bedrooms" db:"bedrooms"`
	Bathrooms    int            `json:"bathrooms" db:"bathrooms"`
	Area         float64        `json:"area" db:"area"`
	PropertyType string         `json:"property_type" db:"property_type"`
	Images       pq.StringArray `json:"images" db:"images"`
	Status       string         `json:"status" db:"status"`
	SellerID     string         `json:"seller_id" db:"seller_id"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// PropertyFilter narrows a listing search. Nil pointers and empty strings
// mean "no constraint".
type PropertyFilter struct {
	Status       string
	PropertyType string
	MinPrice     *float64
	MaxPrice     *float64
	Bedrooms     *int
	Location     string
}

type Lead struct {
	ID         string    `json:"id" db:"id"`
	PropertyID string    `json:"property_id" db:"property_id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Phone      string    `json:"phone" db:"phone"`
	Message    string    `json:"message" db:"message"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type Analytics struct {
	TotalProperties    int `json:"total_properties" db:"total_properties"`
	ApprovedProperties int `json:"approved_properties" db:"approved_properties"`
	PendingProperties  int `json:"pending_properties" db:"pending_properties"`
	TotalUsers         int `json:"total_users" db:"total_users"`
	TotalLeads         int `json:"total_leads" db:"total_leads"`
}

type TypeCount struct {
	PropertyType string `json:"property_type" db:"property_type"`
	Count        int    `json:"count" db:"count"`
}

// Now returns the current time at the precision the store keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
