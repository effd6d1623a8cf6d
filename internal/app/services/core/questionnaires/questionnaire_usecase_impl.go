package questionnaires

import (
	"context"
	"fmt"
	"preop-service/internal/app/contracts"
	"preop-service/internal/app/models"
	"preop-service/internal/pkg/constvars"
	"preop-service/internal/pkg/dto/requests"
	"preop-service/internal/pkg/dto/responses"
	"preop-service/internal/pkg/exceptions"
	"preop-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type questionnaireUsecase struct {
	QuestionnaireRepository contracts.QuestionnaireRepository
	RedisRepository         contracts.RedisRepository
	EventPublisher          contracts.QuestionnaireEventPublisher
	SummaryCacheTTL         time.Duration
	Location                *time.Location
	Log                     *zap.Logger
	now                     func() time.Time
}

var (
	questionnaireUsecaseInstance contracts.QuestionnaireUsecase
	onceQuestionnaireUsecase     sync.Once
)

func NewQuestionnaireUsecase(
	questionnaireMongoRepository contracts.QuestionnaireRepository,
	redisRepository contracts.RedisRepository,
	eventPublisher contracts.QuestionnaireEventPublisher,
	summaryCacheTTL time.Duration,
	location *time.Location,
	logger *zap.Logger,
) contracts.QuestionnaireUsecase {
	onceQuestionnaireUsecase.Do(func() {
		questionnaireUsecaseInstance = &questionnaireUsecase{
			QuestionnaireRepository: questionnaireMongoRepository,
			RedisRepository:         redisRepository,
			EventPublisher:          eventPublisher,
			SummaryCacheTTL:         summaryCacheTTL,
			Location:                location,
			Log:                     logger,
			now:                     time.Now,
		}
	})
	return questionnaireUsecaseInstance
}

func (uc *questionnaireUsecase) Submit(ctx context.Context, request *requests.SubmitQuestionnaire) (*responses.SubmittedQuestionnaire, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	questionnaire := models.NewQuestionnaire(request, uc.currentTime())

	questionnaireID, err := uc.QuestionnaireRepository.CreateQuestionnaire(ctx, questionnaire)
	if err != nil {
		uc.Log.Error("questionnaireUsecase.Submit error inserting questionnaire",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	questionnaire.ID = questionnaireID

	badge := questionnaire.RiskBadge()
	uc.publishEvent(ctx, constvars.EventTypeQuestionnaireSubmitted, questionnaire, badge)

	uc.Log.Info("questionnaireUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
		zap.Stringer(constvars.LoggingASACategoryKey, badge.Category),
	)
	return &responses.SubmittedQuestionnaire{
		ID:          questionnaireID,
		SubmittedAt: questionnaire.SubmittedAt,
		Risk:        badge,
	}, nil
}

func (uc *questionnaireUsecase) FindAll(ctx context.Context, filter *requests.QuestionnaireFilter) ([]responses.QuestionnaireListItem, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingReviewedKey, filter.Reviewed),
	)

	total, err := uc.QuestionnaireRepository.CountAll(ctx, filter)
	if err != nil {
		uc.Log.Error("questionnaireUsecase.FindAll error counting questionnaires",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	questionnaires, err := uc.QuestionnaireRepository.FindAll(ctx, filter)
	if err != nil {
		uc.Log.Error("questionnaireUsecase.FindAll error fetching questionnaires",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	response := make([]responses.QuestionnaireListItem, len(questionnaires))
	for i := range questionnaires {
		response[i] = questionnaires[i].ConvertIntoListItem()
	}

	uc.Log.Info("questionnaireUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingQuestionnaireCountKey, len(response)),
	)
	return response, total, nil
}

func (uc *questionnaireUsecase) FindByID(ctx context.Context, questionnaireID string) (*responses.Questionnaire, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
	)

	questionnaire, err := uc.findQuestionnaire(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	response := questionnaire.ConvertIntoResponse()
	uc.Log.Info("questionnaireUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
	)
	return &response, nil
}

func (uc *questionnaireUsecase) FindSummaryByID(ctx context.Context, questionnaireID string) (*responses.QuestionnaireSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireUsecase.FindSummaryByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
	)

	cacheKey := summaryCacheKey(questionnaireID)
	summaryRedisData, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("questionnaireUsecase.FindSummaryByID error retrieving summary from Redis, rebuilding",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}

	if summaryRedisData != "" {
		var summary responses.QuestionnaireSummary
		err = json.Unmarshal([]byte(summaryRedisData), &summary)
		if err == nil {
			uc.Log.Info("questionnaireUsecase.FindSummaryByID served from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
			)
			return &summary, nil
		}
		uc.Log.Warn("questionnaireUsecase.FindSummaryByID error parsing JSON from Redis, rebuilding",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	questionnaire, err := uc.findQuestionnaire(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	summary := questionnaire.ConvertIntoSummary(uc.currentTime())

	err = uc.RedisRepository.Set(ctx, cacheKey, summary, uc.SummaryCacheTTL)
	if err != nil {
		uc.Log.Warn("questionnaireUsecase.FindSummaryByID error caching summary in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}

	uc.Log.Info("questionnaireUsecase.FindSummaryByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
		zap.Stringer(constvars.LoggingASACategoryKey, summary.Risk.Category),
		zap.Int(constvars.LoggingFunctionalLevelKey, summary.Metrics.FunctionalLevel),
	)
	return &summary, nil
}

func (uc *questionnaireUsecase) MarkReviewed(ctx context.Context, questionnaireID string, request *requests.ReviewQuestionnaire) (*responses.Questionnaire, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	physicianAccess, _ := ctx.Value(constvars.CONTEXT_PHYSICIAN_ACCESS_KEY).(bool)
	uc.Log.Info("questionnaireUsecase.MarkReviewed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
		zap.Bool(constvars.LoggingPhysicianAccessKey, physicianAccess),
	)

	questionnaire, err := uc.findQuestionnaire(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	reviewed := *request.Reviewed
	err = uc.QuestionnaireRepository.UpdateReviewed(ctx, questionnaireID, reviewed)
	if err != nil {
		uc.Log.Error("questionnaireUsecase.MarkReviewed error updating questionnaire",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidateSummary(ctx, questionnaireID)

	wasReviewed := questionnaire.Reviewed
	questionnaire.Reviewed = reviewed
	questionnaire.SetUpdatedAt(uc.currentTime())
	if reviewed && !wasReviewed {
		uc.publishEvent(ctx, constvars.EventTypeQuestionnaireReviewed, questionnaire, questionnaire.RiskBadge())
	}

	response := questionnaire.ConvertIntoResponse()
	uc.Log.Info("questionnaireUsecase.MarkReviewed succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
		zap.Bool(constvars.LoggingReviewedKey, reviewed),
	)
	return &response, nil
}

func (uc *questionnaireUsecase) UpdateTreatment(ctx context.Context, questionnaireID string, request *requests.UpdateTreatment) (*responses.Questionnaire, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	physicianAccess, _ := ctx.Value(constvars.CONTEXT_PHYSICIAN_ACCESS_KEY).(bool)
	uc.Log.Info("questionnaireUsecase.UpdateTreatment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
		zap.Bool(constvars.LoggingPhysicianAccessKey, physicianAccess),
	)

	questionnaire, err := uc.findQuestionnaire(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	updatedAt := uc.currentTime()
	notes := &models.PhysicianNotes{
		Treatment:    request.Treatment,
		Observations: request.Observations,
		UpdatedAt:    &updatedAt,
	}
	err = uc.QuestionnaireRepository.UpdatePhysicianNotes(ctx, questionnaireID, notes)
	if err != nil {
		uc.Log.Error("questionnaireUsecase.UpdateTreatment error updating physician notes",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidateSummary(ctx, questionnaireID)

	questionnaire.Data.Physician = *notes
	questionnaire.SetUpdatedAt(updatedAt)

	response := questionnaire.ConvertIntoResponse()
	uc.Log.Info("questionnaireUsecase.UpdateTreatment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
	)
	return &response, nil
}

func (uc *questionnaireUsecase) findQuestionnaire(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
	if err != nil {
		uc.Log.Error("questionnaireUsecase.findQuestionnaire error fetching questionnaire",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
			zap.Error(err),
		)
		return nil, err
	}
	if questionnaire == nil {
		uc.Log.Info("questionnaireUsecase.findQuestionnaire questionnaire not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
		)
		return nil, exceptions.ErrQuestionnaireNotFound(nil, questionnaireID)
	}
	return questionnaire, nil
}

// invalidateSummary drops the cached summary; a failure only means a stale
// report until the TTL expires.
func (uc *questionnaireUsecase) invalidateSummary(ctx context.Context, questionnaireID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	cacheKey := summaryCacheKey(questionnaireID)

	err := uc.RedisRepository.Delete(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("questionnaireUsecase.invalidateSummary error deleting cached summary",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}
}

func (uc *questionnaireUsecase) publishEvent(ctx context.Context, eventType string, questionnaire *models.Questionnaire, badge responses.RiskBadge) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if uc.EventPublisher == nil {
		return
	}

	event := &requests.QuestionnaireEvent{
		EventID:         utils.GenerateEventID(),
		EventType:       eventType,
		QuestionnaireID: questionnaire.ID,
		PatientName:     questionnaire.PatientName,
		Email:           questionnaire.Email,
		Category:        badge.Category,
		Reviewed:        questionnaire.Reviewed,
		OccurredAt:      uc.currentTime(),
	}

	err := uc.EventPublisher.Publish(ctx, event)
	if err != nil {
		uc.Log.Error("questionnaireUsecase.publishEvent error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.String(constvars.LoggingQuestionnaireIDKey, questionnaire.ID),
			zap.Error(err),
		)
	}
}

func (uc *questionnaireUsecase) currentTime() time.Time {
	now := time.Now
	if uc.now != nil {
		now = uc.now
	}
	if uc.Location != nil {
		return now().In(uc.Location)
	}
	return now()
}

func summaryCacheKey(questionnaireID string) string {
	return fmt.Sprintf(constvars.RedisKeyQuestionnaireSummaryFormat, questionnaireID)
}
