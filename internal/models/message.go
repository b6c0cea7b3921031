package models

import "time"

// Message represents a love note on the messages board
type Message struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	CreatedAt time.Time `json:"createdAt"`
}

type InsertMessage struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Sender  string `json:"sender"`
}

func (m InsertMessage) Validate() error {
	if err := required("title", m.Title); err != nil {
		return err
	}
	if err := required("content", m.Content); err != nil {
		return err
	}
	return required("sender", m.Sender)
}
