package questionnaires

import (
	"context"
	"preop-service/internal/app/models"
	"preop-service/internal/pkg/dto/requests"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockQuestionnaireRepository struct {
	mock.Mock
}

func (m *MockQuestionnaireRepository) CreateQuestionnaire(ctx context.Context, entityQuestionnaire *models.Questionnaire) (string, error) {
	args := m.Called(ctx, entityQuestionnaire)
	return args.String(0), args.Error(1)
}

func (m *MockQuestionnaireRepository) FindAll(ctx context.Context, filter *requests.QuestionnaireFilter) ([]models.Questionnaire, error) {
	args := m.Called(ctx, filter)
	questionnaires, _ := args.Get(0).([]models.Questionnaire)
	return questionnaires, args.Error(1)
}

func (m *MockQuestionnaireRepository) CountAll(ctx context.Context, filter *requests.QuestionnaireFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockQuestionnaireRepository) FindByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	args := m.Called(ctx, questionnaireID)
	questionnaire, _ := args.Get(0).(*models.Questionnaire)
	return questionnaire, args.Error(1)
}

func (m *MockQuestionnaireRepository) UpdateReviewed(ctx context.Context, questionnaireID string, reviewed bool) error {
	args := m.Called(ctx, questionnaireID, reviewed)
	return args.Error(0)
}

func (m *MockQuestionnaireRepository) UpdatePhysicianNotes(ctx context.Context, questionnaireID string, notes *models.PhysicianNotes) error {
	args := m.Called(ctx, questionnaireID, notes)
	return args.Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *requests.QuestionnaireEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
