package contracts

import (
	"context"
	"preop-service/internal/app/models"
	"preop-service/internal/pkg/dto/requests"
	"preop-service/internal/pkg/dto/responses"
)

type MedicationUsecase interface {
	Search(ctx context.Context, request *requests.MedicationSearch) ([]responses.Medication, error)
}

type MedicationRepository interface {
	FindAll(ctx context.Context) ([]models.Medication, error)
}
