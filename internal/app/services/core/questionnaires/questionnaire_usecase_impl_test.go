package questionnaires

import (
	"context"
	"errors"
	"preop-service/internal/app/models"
	"preop-service/internal/pkg/asa"
	"preop-service/internal/pkg/constvars"
	"preop-service/internal/pkg/dto/requests"
	"preop-service/internal/pkg/dto/responses"
	"preop-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var fixedNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestUsecase() (*questionnaireUsecase, *MockQuestionnaireRepository, *MockRedisRepository, *MockEventPublisher) {
	repo := new(MockQuestionnaireRepository)
	redisRepo := new(MockRedisRepository)
	publisher := new(MockEventPublisher)
	uc := &questionnaireUsecase{
		QuestionnaireRepository: repo,
		RedisRepository:         redisRepo,
		EventPublisher:          publisher,
		SummaryCacheTTL:         5 * time.Minute,
		Log:                     zap.NewNop(),
		now:                     func() time.Time { return fixedNow },
	}
	return uc, repo, redisRepo, publisher
}

func storedQuestionnaire(id string) *models.Questionnaire {
	return &models.Questionnaire{
		ID:          id,
		PatientName: "Carmen Vidal",
		Email:       "carmen@example.com",
		SubmittedAt: fixedNow.Add(-48 * time.Hour),
		Data: models.QuestionnaireData{
			Personal: models.PersonalData{
				BirthDate:          "1950-01-01",
				EmotionalState:     "calm",
				PhysicalActivities: []string{"walking_blocks"},
				WeightKg:           "90",
				HeightCm:           "170",
			},
			Medications: models.MedicationData{TakesMedication: constvars.AnswerYes},
		},
	}
}

func submitRequest() *requests.SubmitQuestionnaire {
	return &requests.SubmitQuestionnaire{
		Personal: requests.QuestionnairePersonal{
			FirstName:          "Pablo",
			LastName:           "Serra",
			Email:              "pablo@example.com",
			Procedure:          "Septoplasty",
			EmotionalState:     "calm",
			PhysicalActivities: []string{"swimming", "golf"},
			WeightKg:           "75",
			HeightCm:           "180",
		},
		Medications: requests.QuestionnaireMedications{TakesMedication: constvars.AnswerNo},
	}
}

func TestQuestionnaireUsecase_Submit(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	t.Run("Stores And Publishes", func(t *testing.T) {
		uc, repo, _, publisher := newTestUsecase()
		repo.On("CreateQuestionnaire", ctx, mock.MatchedBy(func(q *models.Questionnaire) bool {
			return !q.Reviewed && q.SubmittedAt.Equal(fixedNow) && q.PatientName == "Pablo Serra"
		})).Return("66b000000000000000000001", nil)
		publisher.On("Publish", ctx, mock.MatchedBy(func(event *requests.QuestionnaireEvent) bool {
			return event.EventType == constvars.EventTypeQuestionnaireSubmitted &&
				event.QuestionnaireID == "66b000000000000000000001" &&
				event.Category == asa.ASAI
		})).Return(nil)

		result, err := uc.Submit(ctx, submitRequest())
		require.NoError(t, err)
		assert.Equal(t, "66b000000000000000000001", result.ID)
		assert.Equal(t, asa.ASAI, result.Risk.Category)
		assert.Equal(t, fixedNow, result.SubmittedAt)
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("Publish Failure Does Not Fail Submission", func(t *testing.T) {
		uc, repo, _, publisher := newTestUsecase()
		repo.On("CreateQuestionnaire", ctx, mock.Anything).Return("66b000000000000000000002", nil)
		publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker unavailable"))

		result, err := uc.Submit(ctx, submitRequest())
		require.NoError(t, err)
		assert.Equal(t, "66b000000000000000000002", result.ID)
	})

	t.Run("Insert Failure", func(t *testing.T) {
		uc, repo, _, publisher := newTestUsecase()
		repo.On("CreateQuestionnaire", ctx, mock.Anything).Return("", exceptions.ErrMongoDBInsertDocument(errors.New("timeout")))

		_, err := uc.Submit(ctx, submitRequest())
		assert.Error(t, err)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestQuestionnaireUsecase_FindAll(t *testing.T) {
	ctx := context.Background()
	reviewed := false
	filter := &requests.QuestionnaireFilter{
		Reviewed:   &reviewed,
		Pagination: requests.Pagination{Page: 1, PageSize: 20},
	}

	t.Run("Items Carry Risk Badge", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase()
		repo.On("CountAll", ctx, filter).Return(2, nil)
		repo.On("FindAll", ctx, filter).Return([]models.Questionnaire{
			*storedQuestionnaire("a1"),
			{ID: "a2", Data: models.QuestionnaireData{}},
		}, nil)

		items, total, err := uc.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, items, 2)
		assert.Equal(t, asa.ASAIII, items[0].Risk.Category)
		assert.Equal(t, asa.ASAIV, items[1].Risk.Category)
	})

	t.Run("Count Failure", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase()
		repo.On("CountAll", ctx, filter).Return(0, exceptions.ErrMongoDBCountDocuments(errors.New("down")))

		_, _, err := uc.FindAll(ctx, filter)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})
}

func TestQuestionnaireUsecase_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase()
		repo.On("FindByID", ctx, "a1").Return(storedQuestionnaire("a1"), nil)

		result, err := uc.FindByID(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, "Carmen Vidal", result.PatientName)
	})

	t.Run("Not Found", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase()
		repo.On("FindByID", ctx, "missing").Return(nil, nil)

		_, err := uc.FindByID(ctx, "missing")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestQuestionnaireUsecase_FindSummaryByID(t *testing.T) {
	ctx := context.Background()
	cacheKey := "questionnaires:summary:a1"

	t.Run("Cache Miss Builds And Stores", func(t *testing.T) {
		uc, repo, redisRepo, _ := newTestUsecase()
		redisRepo.On("Get", ctx, cacheKey).Return("", nil)
		repo.On("FindByID", ctx, "a1").Return(storedQuestionnaire("a1"), nil)
		redisRepo.On("Set", ctx, cacheKey, mock.AnythingOfType("responses.QuestionnaireSummary"), 5*time.Minute).Return(nil)

		summary, err := uc.FindSummaryByID(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, asa.ASAIII, summary.Risk.Category)
		assert.Equal(t, 31.1, summary.Metrics.BMI)
		require.NotNil(t, summary.Patient.Age)
		assert.Equal(t, 76, *summary.Patient.Age)
		assert.Equal(t, fixedNow, summary.GeneratedAt)
		redisRepo.AssertExpectations(t)
	})

	t.Run("Cache Hit Skips Database", func(t *testing.T) {
		uc, repo, redisRepo, _ := newTestUsecase()
		cached, err := json.Marshal(responses.QuestionnaireSummary{ID: "a1", Risk: responses.RiskBadge{Category: asa.ASAII}})
		require.NoError(t, err)
		redisRepo.On("Get", ctx, cacheKey).Return(string(cached), nil)

		summary, err := uc.FindSummaryByID(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, asa.ASAII, summary.Risk.Category)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Redis Failures Fall Back To Database", func(t *testing.T) {
		uc, repo, redisRepo, _ := newTestUsecase()
		redisRepo.On("Get", ctx, cacheKey).Return("", exceptions.ErrRedisGetNoData(errors.New("conn refused"), cacheKey))
		repo.On("FindByID", ctx, "a1").Return(storedQuestionnaire("a1"), nil)
		redisRepo.On("Set", ctx, cacheKey, mock.Anything, mock.Anything).Return(exceptions.ErrRedisSet(errors.New("conn refused")))

		summary, err := uc.FindSummaryByID(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, "a1", summary.ID)
	})

	t.Run("Corrupt Cache Entry Is Rebuilt", func(t *testing.T) {
		uc, repo, redisRepo, _ := newTestUsecase()
		redisRepo.On("Get", ctx, cacheKey).Return("{not json", nil)
		repo.On("FindByID", ctx, "a1").Return(storedQuestionnaire("a1"), nil)
		redisRepo.On("Set", ctx, cacheKey, mock.Anything, mock.Anything).Return(nil)

		summary, err := uc.FindSummaryByID(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, "a1", summary.ID)
	})

	t.Run("Unknown Questionnaire", func(t *testing.T) {
		uc, repo, redisRepo, _ := newTestUsecase()
		redisRepo.On("Get", ctx, "questionnaires:summary:zz").Return("", nil)
		repo.On("FindByID", ctx, "zz").Return(nil, nil)

		_, err := uc.FindSummaryByID(ctx, "zz")
		assert.Error(t, err)
		redisRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestQuestionnaireUsecase_MarkReviewed(t *testing.T) {
	ctx := context.Background()
	reviewed := true

	t.Run("Marks Reviewed Invalidates Cache And Publishes", func(t *testing.T) {
		uc, repo, redisRepo, publisher := newTestUsecase()
		repo.On("FindByID", ctx, "a1").Return(storedQuestionnaire("a1"), nil)
		repo.On("UpdateReviewed", ctx, "a1", true).Return(nil)
		redisRepo.On("Delete", ctx, "questionnaires:summary:a1").Return(nil)
		publisher.On("Publish", ctx, mock.MatchedBy(func(event *requests.QuestionnaireEvent) bool {
			return event.EventType == constvars.EventTypeQuestionnaireReviewed && event.Reviewed
		})).Return(nil)

		result, err := uc.MarkReviewed(ctx, "a1", &requests.ReviewQuestionnaire{Reviewed: &reviewed})
		require.NoError(t, err)
		assert.True(t, result.Reviewed)
		repo.AssertExpectations(t)
		redisRepo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("Already Reviewed Does Not Publish Again", func(t *testing.T) {
		uc, repo, redisRepo, publisher := newTestUsecase()
		stored := storedQuestionnaire("a1")
		stored.Reviewed = true
		repo.On("FindByID", ctx, "a1").Return(stored, nil)
		repo.On("UpdateReviewed", ctx, "a1", true).Return(nil)
		redisRepo.On("Delete", ctx, "questionnaires:summary:a1").Return(nil)

		_, err := uc.MarkReviewed(ctx, "a1", &requests.ReviewQuestionnaire{Reviewed: &reviewed})
		require.NoError(t, err)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Update Failure", func(t *testing.T) {
		uc, repo, redisRepo, _ := newTestUsecase()
		repo.On("FindByID", ctx, "a1").Return(storedQuestionnaire("a1"), nil)
		repo.On("UpdateReviewed", ctx, "a1", true).Return(exceptions.ErrMongoDBUpdateDocument(errors.New("down")))

		_, err := uc.MarkReviewed(ctx, "a1", &requests.ReviewQuestionnaire{Reviewed: &reviewed})
		assert.Error(t, err)
		redisRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestQuestionnaireUsecase_UpdateTreatment(t *testing.T) {
	ctx := context.Background()

	uc, repo, redisRepo, _ := newTestUsecase()
	repo.On("FindByID", ctx, "a1").Return(storedQuestionnaire("a1"), nil)
	repo.On("UpdatePhysicianNotes", ctx, "a1", mock.MatchedBy(func(notes *models.PhysicianNotes) bool {
		return notes.Treatment == "Suspend anticoagulant 5 days before" && notes.UpdatedAt != nil && notes.UpdatedAt.Equal(fixedNow)
	})).Return(nil)
	redisRepo.On("Delete", ctx, "questionnaires:summary:a1").Return(errors.New("redis down"))

	result, err := uc.UpdateTreatment(ctx, "a1", &requests.UpdateTreatment{
		Treatment:    "Suspend anticoagulant 5 days before",
		Observations: "Check INR",
	})
	require.NoError(t, err)
	assert.Equal(t, "Check INR", result.Physician.Observations)
	require.NotNil(t, result.Physician.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestQuestionnaireUsecase_LogsPhysicianAccess(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_PHYSICIAN_ACCESS_KEY, true)

	uc, repo, redisRepo, _ := newTestUsecase()
	core, logs := observer.New(zap.InfoLevel)
	uc.Log = zap.New(core)

	repo.On("FindByID", ctx, "a1").Return(storedQuestionnaire("a1"), nil)
	repo.On("UpdatePhysicianNotes", ctx, "a1", mock.Anything).Return(nil)
	redisRepo.On("Delete", ctx, "questionnaires:summary:a1").Return(nil)

	_, err := uc.UpdateTreatment(ctx, "a1", &requests.UpdateTreatment{Treatment: "Fasting from midnight"})
	require.NoError(t, err)

	entries := logs.FilterMessage("questionnaireUsecase.UpdateTreatment called").All()
	require.Len(t, entries, 1)
	assert.Equal(t, true, entries[0].ContextMap()[constvars.LoggingPhysicianAccessKey])

	t.Run("Absent Without Gate", func(t *testing.T) {
		uc, repo, redisRepo, _ := newTestUsecase()
		core, logs := observer.New(zap.InfoLevel)
		uc.Log = zap.New(core)
		plain := context.Background()

		repo.On("FindByID", plain, "a1").Return(storedQuestionnaire("a1"), nil)
		repo.On("UpdateReviewed", plain, "a1", false).Return(nil)
		redisRepo.On("Delete", plain, "questionnaires:summary:a1").Return(nil)

		reviewed := false
		_, err := uc.MarkReviewed(plain, "a1", &requests.ReviewQuestionnaire{Reviewed: &reviewed})
		require.NoError(t, err)

		entries := logs.FilterMessage("questionnaireUsecase.MarkReviewed called").All()
		require.Len(t, entries, 1)
		assert.Equal(t, false, entries[0].ContextMap()[constvars.LoggingPhysicianAccessKey])
	})
}
