package model

import "time"

// Review is a 1-5 star rating left by a user for a sweet. At most one review
// exists per (user, sweet) pair.
type Review struct {
	ID        string
	UserID    string
	SweetID   string
	Rating    int
	Comment   *string
	CreatedAt time.Time
	UpdatedAt time.Time

	UserEmail string
}

// ReviewPatch updates only the fields present.
type ReviewPatch struct {
	Rating  *int
	Comment *string
}

// ReviewableItem is a sweet the user has a qualifying order for and has not
// reviewed yet, deduplicated by sweet.
type ReviewableItem struct {
	SweetID           string
	SweetName         string
	SweetImageURL     *string
	SweetCategory     string
	PurchasedQuantity int
	PurchaseDate      time.Time
}
