package models

import "preop-service/internal/pkg/dto/responses"

// Medication is an entry of the autocomplete catalog.
type Medication struct {
	ID   string `json:"id" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
}

func (m Medication) ConvertIntoResponse() responses.Medication {
	return responses.Medication{
		ID:   m.ID,
		Name: m.Name,
	}
}
