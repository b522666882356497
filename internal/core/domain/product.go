package domain

import "time"

// Product belongs to an organization.
type Product struct {
	ID             string    `json:"id"`
	Code           string    `json:"code,omitempty"`
	Name           string    `json:"name"`
	OrganizationID string    `json:"organization"`
	Cost           float64   `json:"cost"`
	Price          float64   `json:"price"`
	IsDisabled     bool      `json:"isDisabled"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
