package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"preop-service/internal/app/config"
	"preop-service/internal/app/delivery/http/controllers"
	"preop-service/internal/app/delivery/http/middlewares"
	"preop-service/internal/pkg/asa"
	"preop-service/internal/pkg/constvars"
	"preop-service/internal/pkg/dto/requests"
	"preop-service/internal/pkg/dto/responses"
	"preop-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPhysicianAPIKey = "test-physician-api-key-12345"

type MockQuestionnaireUsecase struct {
	mock.Mock
}

func (m *MockQuestionnaireUsecase) Submit(ctx context.Context, request *requests.SubmitQuestionnaire) (*responses.SubmittedQuestionnaire, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SubmittedQuestionnaire), args.Error(1)
}

func (m *MockQuestionnaireUsecase) FindAll(ctx context.Context, filter *requests.QuestionnaireFilter) ([]responses.QuestionnaireListItem, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]responses.QuestionnaireListItem), args.Int(1), args.Error(2)
}

func (m *MockQuestionnaireUsecase) FindByID(ctx context.Context, questionnaireID string) (*responses.Questionnaire, error) {
	args := m.Called(ctx, questionnaireID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Questionnaire), args.Error(1)
}

func (m *MockQuestionnaireUsecase) FindSummaryByID(ctx context.Context, questionnaireID string) (*responses.QuestionnaireSummary, error) {
	args := m.Called(ctx, questionnaireID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.QuestionnaireSummary), args.Error(1)
}

func (m *MockQuestionnaireUsecase) MarkReviewed(ctx context.Context, questionnaireID string, request *requests.ReviewQuestionnaire) (*responses.Questionnaire, error) {
	args := m.Called(ctx, questionnaireID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Questionnaire), args.Error(1)
}

func (m *MockQuestionnaireUsecase) UpdateTreatment(ctx context.Context, questionnaireID string, request *requests.UpdateTreatment) (*responses.Questionnaire, error) {
	args := m.Called(ctx, questionnaireID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Questionnaire), args.Error(1)
}

type MockClassificationUsecase struct {
	mock.Mock
}

func (m *MockClassificationUsecase) Classify(ctx context.Context, request *requests.ClassifyRisk) (*responses.RiskClassification, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.RiskClassification), args.Error(1)
}

func (m *MockClassificationUsecase) FindActivities(ctx context.Context) ([]asa.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]asa.Activity), args.Error(1)
}

type MockMedicationUsecase struct {
	mock.Mock
}

func (m *MockMedicationUsecase) Search(ctx context.Context, request *requests.MedicationSearch) ([]responses.Medication, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Medication), args.Error(1)
}

type routerFixture struct {
	router         *chi.Mux
	questionnaires *MockQuestionnaireUsecase
	classifier     *MockClassificationUsecase
	medications    *MockMedicationUsecase
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:  "api",
			Version:         "v1",
			PhysicianAPIKey: testPhysicianAPIKey,
		},
	}

	fixture := &routerFixture{
		router:         chi.NewRouter(),
		questionnaires: new(MockQuestionnaireUsecase),
		classifier:     new(MockClassificationUsecase),
		medications:    new(MockMedicationUsecase),
	}

	SetupRoutes(
		fixture.router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewQuestionnaireController(logger, fixture.questionnaires, time.Second),
		controllers.NewClassificationController(logger, fixture.classifier, time.Second),
		controllers.NewMedicationController(logger, fixture.medications, time.Second),
	)
	return fixture
}

func (f *routerFixture) serve(method, target string, body any, apiKey string) *httptest.ResponseRecorder {
	var payload []byte
	switch value := body.(type) {
	case nil:
	case string:
		payload = []byte(value)
	default:
		payload, _ = json.Marshal(value)
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set(constvars.HeaderXAPIKey, apiKey)
	}

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func validSubmission() requests.SubmitQuestionnaire {
	return requests.SubmitQuestionnaire{
		Personal: requests.QuestionnairePersonal{
			FirstName:          "Ana",
			LastName:           "Pérez",
			NationalID:         "30111222",
			BirthDate:          "1960-03-15",
			Phone:              "+54 11 5555 0000",
			Email:              "ana@example.com",
			Procedure:          "Cholecystectomy",
			EmotionalState:     "calm",
			PhysicalActivities: []string{"walking_blocks"},
			WeightKg:           "70",
			HeightCm:           "165",
		},
		History: requests.QuestionnaireHistory{
			FirstSurgery:     "yes",
			Pacemaker:        "no",
			CPAP:             "no",
			BleedingDisorder: "no",
			Smoker:           "no",
			Alcohol:          "never",
			Drugs:            "no",
		},
		Medications: requests.QuestionnaireMedications{
			TakesMedication: "no",
			AdverseReaction: "no",
		},
	}
}

func TestQuestionnaireRoutes_Submit(t *testing.T) {
	t.Run("public submission is accepted", func(t *testing.T) {
		f := newRouterFixture(t)
		f.questionnaires.On("Submit", mock.Anything, mock.AnythingOfType("*requests.SubmitQuestionnaire")).
			Return(&responses.SubmittedQuestionnaire{ID: "abc"}, nil)

		rr := f.serve(http.MethodPost, "/api/v1/questionnaires", validSubmission(), "")

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
		f.questionnaires.AssertExpectations(t)
	})

	t.Run("malformed JSON is rejected", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.serve(http.MethodPost, "/api/v1/questionnaires", "{not json", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.questionnaires.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("missing required fields fail validation", func(t *testing.T) {
		f := newRouterFixture(t)
		submission := validSubmission()
		submission.Personal.Email = "not-an-email"

		rr := f.serve(http.MethodPost, "/api/v1/questionnaires", submission, "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.questionnaires.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("usecase deadline maps to gateway timeout", func(t *testing.T) {
		f := newRouterFixture(t)
		f.questionnaires.On("Submit", mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded)

		rr := f.serve(http.MethodPost, "/api/v1/questionnaires", validSubmission(), "")

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})
}

func TestQuestionnaireRoutes_PhysicianAccess(t *testing.T) {
	protected := []struct {
		name   string
		method string
		target string
		body   any
	}{
		{"list", http.MethodGet, "/api/v1/questionnaires", nil},
		{"detail", http.MethodGet, "/api/v1/questionnaires/abc", nil},
		{"summary", http.MethodGet, "/api/v1/questionnaires/abc/summary", nil},
		{"review", http.MethodPatch, "/api/v1/questionnaires/abc/review", map[string]bool{"reviewed": true}},
		{"treatment", http.MethodPut, "/api/v1/questionnaires/abc/treatment", map[string]string{"treatment": "x"}},
	}

	for _, tc := range protected {
		t.Run(tc.name+" without API key", func(t *testing.T) {
			f := newRouterFixture(t)
			rr := f.serve(tc.method, tc.target, tc.body, "")
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			f.questionnaires.AssertExpectations(t)
		})

		t.Run(tc.name+" with invalid API key", func(t *testing.T) {
			f := newRouterFixture(t)
			rr := f.serve(tc.method, tc.target, tc.body, "wrong-key")
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestQuestionnaireRoutes_FindAll(t *testing.T) {
	t.Run("filters and pagination reach the usecase", func(t *testing.T) {
		f := newRouterFixture(t)
		f.questionnaires.On("FindAll", mock.Anything, mock.MatchedBy(func(filter *requests.QuestionnaireFilter) bool {
			return filter.Reviewed != nil && !*filter.Reviewed && filter.Page == 2 && filter.PageSize == 5
		})).Return([]responses.QuestionnaireListItem{{ID: "abc"}}, 11, nil)

		rr := f.serve(http.MethodGet, "/api/v1/questionnaires?reviewed=false&page=2&page_size=5", nil, testPhysicianAPIKey)

		require.Equal(t, http.StatusOK, rr.Code)
		var body responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.NotNil(t, body.Pagination)
		assert.Equal(t, 11, body.Pagination.Total)
		assert.Equal(t, "/api/v1/questionnaires?page=3&page_size=5", body.Pagination.NextURL)
		assert.Equal(t, "/api/v1/questionnaires?page=1&page_size=5", body.Pagination.PrevURL)
		f.questionnaires.AssertExpectations(t)
	})

	t.Run("invalid reviewed flag is rejected", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.serve(http.MethodGet, "/api/v1/questionnaires?reviewed=maybe", nil, testPhysicianAPIKey)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.questionnaires.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})
}

func TestQuestionnaireRoutes_Detail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newRouterFixture(t)
		f.questionnaires.On("FindByID", mock.Anything, "abc").Return(&responses.Questionnaire{ID: "abc"}, nil)

		rr := f.serve(http.MethodGet, "/api/v1/questionnaires/abc", nil, testPhysicianAPIKey)

		assert.Equal(t, http.StatusOK, rr.Code)
		f.questionnaires.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		f := newRouterFixture(t)
		f.questionnaires.On("FindByID", mock.Anything, "missing").
			Return(nil, exceptions.ErrQuestionnaireNotFound(nil, "missing"))

		rr := f.serve(http.MethodGet, "/api/v1/questionnaires/missing", nil, testPhysicianAPIKey)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("summary", func(t *testing.T) {
		f := newRouterFixture(t)
		f.questionnaires.On("FindSummaryByID", mock.Anything, "abc").Return(&responses.QuestionnaireSummary{}, nil)

		rr := f.serve(http.MethodGet, "/api/v1/questionnaires/abc/summary", nil, testPhysicianAPIKey)

		assert.Equal(t, http.StatusOK, rr.Code)
		f.questionnaires.AssertExpectations(t)
	})
}

func TestQuestionnaireRoutes_PhysicianUpdates(t *testing.T) {
	t.Run("mark reviewed", func(t *testing.T) {
		f := newRouterFixture(t)
		f.questionnaires.On("MarkReviewed", mock.Anything, "abc", mock.MatchedBy(func(request *requests.ReviewQuestionnaire) bool {
			return request.Reviewed != nil && *request.Reviewed
		})).Return(&responses.Questionnaire{ID: "abc", Reviewed: true}, nil)

		rr := f.serve(http.MethodPatch, "/api/v1/questionnaires/abc/review", map[string]bool{"reviewed": true}, testPhysicianAPIKey)

		assert.Equal(t, http.StatusOK, rr.Code)
		f.questionnaires.AssertExpectations(t)
	})

	t.Run("review without flag fails validation", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.serve(http.MethodPatch, "/api/v1/questionnaires/abc/review", map[string]any{}, testPhysicianAPIKey)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.questionnaires.AssertNotCalled(t, "MarkReviewed", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("update treatment", func(t *testing.T) {
		f := newRouterFixture(t)
		f.questionnaires.On("UpdateTreatment", mock.Anything, "abc", &requests.UpdateTreatment{
			Treatment:    "Suspend aspirin",
			Observations: "Cardiology consult",
		}).Return(&responses.Questionnaire{ID: "abc"}, nil)

		rr := f.serve(http.MethodPut, "/api/v1/questionnaires/abc/treatment", map[string]string{
			"treatment":    "Suspend aspirin",
			"observations": "Cardiology consult",
		}, testPhysicianAPIKey)

		assert.Equal(t, http.StatusOK, rr.Code)
		f.questionnaires.AssertExpectations(t)
	})
}

func TestClassificationRoutes(t *testing.T) {
	t.Run("classify", func(t *testing.T) {
		f := newRouterFixture(t)
		f.classifier.On("Classify", mock.Anything, &requests.ClassifyRisk{
			WeightKg:           "70",
			HeightCm:           "170",
			PhysicalActivities: []string{"jogging"},
		}).Return(&responses.RiskClassification{Category: asa.ASAI, Description: asa.DescriptionASAI}, nil)

		rr := f.serve(http.MethodPost, "/api/v1/risk-classifications", map[string]any{
			"weight_kg":           "70",
			"height_cm":           "170",
			"physical_activities": []string{"jogging"},
		}, "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), asa.DescriptionASAI)
		f.classifier.AssertExpectations(t)
	})

	t.Run("activities", func(t *testing.T) {
		f := newRouterFixture(t)
		f.classifier.On("FindActivities", mock.Anything).Return(asa.KnownActivities(), nil)

		rr := f.serve(http.MethodGet, "/api/v1/activities", nil, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		f.classifier.AssertExpectations(t)
	})
}

func TestMedicationRoutes(t *testing.T) {
	f := newRouterFixture(t)
	f.medications.On("Search", mock.Anything, &requests.MedicationSearch{Query: "para", Limit: 5}).
		Return([]responses.Medication{{ID: "1", Name: "Paracetamol"}}, nil)

	rr := f.serve(http.MethodGet, "/api/v1/medications?search=para&limit=5", nil, "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Paracetamol")
	f.medications.AssertExpectations(t)
}
