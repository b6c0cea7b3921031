package models

import "time"

// Photo represents a gallery photo
type Photo struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	Date      string    `json:"date"`
	Category  string    `json:"category"`
	Caption   *string   `json:"caption"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertPhoto is the creation payload; id and createdAt are server-assigned.
type InsertPhoto struct {
	Title    string  `json:"title"`
	ImageURL string  `json:"imageUrl"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Caption  *string `json:"caption"`
}

func (p InsertPhoto) Validate() error {
	if err := required("title", p.Title); err != nil {
		return err
	}
	if err := required("imageUrl", p.ImageURL); err != nil {
		return err
	}
	if err := required("date", p.Date); err != nil {
		return err
	}
	return required("category", p.Category)
}

// PhotoUpdate is a partial update; nil fields are left unchanged.
type PhotoUpdate struct {
	Title    *string `json:"title"`
	ImageURL *string `json:"imageUrl"`
	Date     *string `json:"date"`
	Category *string `json:"category"`
	Caption  *string `json:"caption"`
}
