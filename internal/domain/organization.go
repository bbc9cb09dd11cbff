package domain

import "time"

// Organization is the tenancy root. Spaces and widgets are scoped to it
// directly; tools and workflows are scoped to it through their collection.
type Organization struct {
	ID        int64
	Name      string
	Settings  map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}
