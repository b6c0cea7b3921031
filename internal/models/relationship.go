package models

// Relationship holds the couple's shared record; the store keeps a single one
// and it drives the duration counter on the client.
type Relationship struct {
	ID        int    `json:"id"`
	StartDate string `json:"startDate"`
	Partner1  string `json:"partner1"`
	Partner2  string `json:"partner2"`
}

type InsertRelationship struct {
	StartDate string `json:"startDate"`
	Partner1  string `json:"partner1"`
	Partner2  string `json:"partner2"`
}

func (r InsertRelationship) Validate() error {
	if err := required("startDate", r.StartDate); err != nil {
		return err
	}
	if err := required("partner1", r.Partner1); err != nil {
		return err
	}
	return required("partner2", r.Partner2)
}

// RelationshipUpdate is a partial update; nil fields are left unchanged.
type RelationshipUpdate struct {
	StartDate *string `json:"startDate"`
	Partner1  *string `json:"partner1"`
	Partner2  *string `json:"partner2"`
}
