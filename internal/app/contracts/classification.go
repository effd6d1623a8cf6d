package contracts

import (
	"context"
	"preop-service/internal/pkg/asa"
	"preop-service/internal/pkg/dto/requests"
	"preop-service/internal/pkg/dto/responses"
)

type ClassificationUsecase interface {
	Classify(ctx context.Context, request *requests.ClassifyRisk) (*responses.RiskClassification, error)
	FindActivities(ctx context.Context) ([]asa.Activity, error)
}
