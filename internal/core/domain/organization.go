package domain

import "time"

// Organization is a tenant grouping for products.
type Organization struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	IsDisabled bool      `json:"isDisabled"`
	DocVersion int       `json:"docVersion"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
