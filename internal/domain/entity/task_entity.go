package entity

import "time"

// Task is a plain record owned by a single user. Tasks carry no invariants
// beyond ownership, so unlike User they are mutated through the service
// layer directly.
type Task struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Completed     bool      `json:"completed"`
	AttachmentURL string    `json:"attachmentUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
