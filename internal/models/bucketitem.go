package models

import "time"

// BucketItem represents an entry on the shared bucket list
type BucketItem struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	TargetDate    *string   `json:"targetDate"`
	Notes         *string   `json:"notes"`
	Completed     bool      `json:"completed"`
	CompletedDate *string   `json:"completedDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

type InsertBucketItem struct {
	Title         string  `json:"title"`
	TargetDate    *string `json:"targetDate"`
	Notes         *string `json:"notes"`
	Completed     bool    `json:"completed"`
	CompletedDate *string `json:"completedDate"`
}

func (b InsertBucketItem) Validate() error {
	return required("title", b.Title)
}

// BucketItemUpdate is a partial update; nil fields are left unchanged.
type BucketItemUpdate struct {
	Title         *string `json:"title"`
	TargetDate    *string `json:"targetDate"`
	Notes         *string `json:"notes"`
	Completed     *bool   `json:"completed"`
	CompletedDate *string `json:"completedDate"`
}

// BucketItemToggle flips completion state; completed must be present.
type BucketItemToggle struct {
	Completed     *bool   `json:"completed"`
	CompletedDate *string `json:"completedDate"`
}

func (t BucketItemToggle) Validate() error {
	if t.Completed == nil {
		return &ValidationError{Field: "completed", Reason: "is required"}
	}
	return nil
}
