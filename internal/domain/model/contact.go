package model

import "time"

// ContactForm is an inbound contact submission awaiting admin moderation.
type ContactForm struct {
	ID          string
	Name        string
	Email       string
	Phone       *string
	Company     *string
	Message     string
	IsBulkOrder bool
	IsProcessed bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ContactPatch updates only the fields present.
type ContactPatch struct {
	Name        *string
	Email       *string
	Phone       *string
	Company     *string
	Message     *string
	IsBulkOrder *bool
	IsProcessed *bool
}
