package requests

import (
	"preop-service/internal/pkg/asa"
	"time"
)

// QuestionnaireEvent is the message body published to the questionnaire events queue.
type QuestionnaireEvent struct {
	EventID         string       `json:"event_id"`
	EventType       string       `json:"event_type"`
	QuestionnaireID string       `json:"questionnaire_id"`
	PatientName     string       `json:"patient_name,omitempty"`
	Email           string       `json:"email,omitempty"`
	Category        asa.Category `json:"asa_category"`
	Reviewed        bool         `json:"reviewed"`
	OccurredAt      time.Time    `json:"occurred_at"`
}
