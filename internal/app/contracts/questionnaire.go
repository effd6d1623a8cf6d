package contracts

import (
	"context"
	"preop-service/internal/app/models"
	"preop-service/internal/pkg/dto/requests"
	"preop-service/internal/pkg/dto/responses"
)

type QuestionnaireUsecase interface {
	Submit(ctx context.Context, request *requests.SubmitQuestionnaire) (*responses.SubmittedQuestionnaire, error)
	FindAll(ctx context.Context, filter *requests.QuestionnaireFilter) ([]responses.QuestionnaireListItem, int, error)
	FindByID(ctx context.Context, questionnaireID string) (*responses.Questionnaire, error)
	FindSummaryByID(ctx context.Context, questionnaireID string) (*responses.QuestionnaireSummary, error)
	MarkReviewed(ctx context.Context, questionnaireID string, request *requests.ReviewQuestionnaire) (*responses.Questionnaire, error)
	UpdateTreatment(ctx context.Context, questionnaireID string, request *requests.UpdateTreatment) (*responses.Questionnaire, error)
}

type QuestionnaireRepository interface {
	CreateQuestionnaire(ctx context.Context, entityQuestionnaire *models.Questionnaire) (string, error)
	FindAll(ctx context.Context, filter *requests.QuestionnaireFilter) ([]models.Questionnaire, error)
	CountAll(ctx context.Context, filter *requests.QuestionnaireFilter) (int, error)
	FindByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error)
	UpdateReviewed(ctx context.Context, questionnaireID string, reviewed bool) error
	UpdatePhysicianNotes(ctx context.Context, questionnaireID string, notes *models.PhysicianNotes) error
}
