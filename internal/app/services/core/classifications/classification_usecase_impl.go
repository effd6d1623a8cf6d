package classifications

import (
	"context"
	"preop-service/internal/app/contracts"
	"preop-service/internal/pkg/asa"
	"preop-service/internal/pkg/constvars"
	"preop-service/internal/pkg/dto/requests"
	"preop-service/internal/pkg/dto/responses"
	"sync"

	"go.uber.org/zap"
)

type classificationUsecase struct {
	Log *zap.Logger
}

var (
	classificationUsecaseInstance contracts.ClassificationUsecase
	onceClassificationUsecase     sync.Once
)

func NewClassificationUsecase(logger *zap.Logger) contracts.ClassificationUsecase {
	onceClassificationUsecase.Do(func() {
		classificationUsecaseInstance = &classificationUsecase{
			Log: logger,
		}
	})
	return classificationUsecaseInstance
}

func (uc *classificationUsecase) Classify(ctx context.Context, request *requests.ClassifyRisk) (*responses.RiskClassification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("classificationUsecase.Classify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	record := &asa.IntakeRecord{
		WeightKg:                 request.WeightKg,
		HeightCm:                 request.HeightCm,
		TakesMedicationRegularly: request.TakesMedicationRegularly,
		PhysicalActivities:       make([]asa.ActivityTag, 0, len(request.PhysicalActivities)),
	}

	var unrecognized []string
	for _, raw := range request.PhysicalActivities {
		tag, ok := asa.ParseActivityTag(raw)
		if !ok {
			unrecognized = append(unrecognized, raw)
		}
		record.PhysicalActivities = append(record.PhysicalActivities, tag)
	}

	assessment := asa.Assess(record)
	response := &responses.RiskClassification{
		BMI:                    asa.RoundBMI(assessment.BMI),
		BMIAvailable:           assessment.BMI > 0,
		FunctionalLevel:        assessment.FunctionalLevel,
		FunctionalClass:        asa.ClassifyFunctional(record.PhysicalActivities),
		Category:               assessment.Category,
		Description:            asa.Describe(assessment.Category),
		UnrecognizedActivities: unrecognized,
	}

	uc.Log.Info("classificationUsecase.Classify succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Stringer(constvars.LoggingASACategoryKey, response.Category),
		zap.Int(constvars.LoggingFunctionalLevelKey, response.FunctionalLevel),
	)
	return response, nil
}

func (uc *classificationUsecase) FindActivities(ctx context.Context) ([]asa.Activity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("classificationUsecase.FindActivities called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return asa.KnownActivities(), nil
}
