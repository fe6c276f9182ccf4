package dto

import "time"

// ReviewCreateRequest describes the review creation payload.
type ReviewCreateRequest struct {
	SweetID string  `json:"sweet_id"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// ReviewUpdateRequest is a partial update; absent fields stay untouched.
type ReviewUpdateRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// ReviewResponse describes one review.
type ReviewResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SweetID   string    `json:"sweet_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserEmail string    `json:"user_email,omitempty"`
}

// ReviewableItemResponse is one purchased-and-unreviewed sweet.
type ReviewableItemResponse struct {
	SweetID           string    `json:"sweet_id"`
	SweetName         string    `json:"sweet_name"`
	SweetImageURL     *string   `json:"sweet_image_url,omitempty"`
	SweetCategory     string    `json:"sweet_category"`
	PurchasedQuantity int       `json:"purchased_quantity"`
	PurchaseDate      time.Time `json:"purchase_date"`
}
