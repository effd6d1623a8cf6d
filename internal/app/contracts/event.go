package contracts

import (
	"context"
	"preop-service/internal/pkg/dto/requests"
)

// QuestionnaireEventPublisher notifies downstream consumers about questionnaire lifecycle changes.
type QuestionnaireEventPublisher interface {
	Publish(ctx context.Context, event *requests.QuestionnaireEvent) error
}
