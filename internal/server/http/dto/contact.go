package dto

import "time"

// ContactCreateRequest describes the public contact-form payload.
type ContactCreateRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Company     *string `json:"company"`
	Message     string  `json:"message"`
	IsBulkOrder bool    `json:"is_bulk_order"`
}

// ContactUpdateRequest is the admin moderation patch.
type ContactUpdateRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Company     *string `json:"company"`
	Message     *string `json:"message"`
	IsBulkOrder *bool   `json:"is_bulk_order"`
	IsProcessed *bool   `json:"is_processed"`
}

// ContactResponse describes one contact submission.
type ContactResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Company     *string   `json:"company,omitempty"`
	Message     string    `json:"message"`
	IsBulkOrder bool      `json:"is_bulk_order"`
	IsProcessed bool      `json:"is_processed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
