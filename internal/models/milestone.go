package models

import "time"

// Milestone represents a dated event on the relationship timeline
type Milestone struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type InsertMilestone struct {
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
}

func (m InsertMilestone) Validate() error {
	if err := required("title", m.Title); err != nil {
		return err
	}
	return required("date", m.Date)
}
