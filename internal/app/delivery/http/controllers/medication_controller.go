package controllers

import (
	"context"
	"net/http"
	"preop-service/internal/app/contracts"
	"preop-service/internal/pkg/constvars"
	"preop-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type MedicationController struct {
	Log               *zap.Logger
	MedicationUsecase contracts.MedicationUsecase
	RequestTimeout    time.Duration
}

func NewMedicationController(logger *zap.Logger, medicationUsecase contracts.MedicationUsecase, requestTimeout time.Duration) *MedicationController {
	return &MedicationController{
		Log:               logger,
		MedicationUsecase: medicationUsecase,
		RequestTimeout:    requestTimeout,
	}
}

func (ctrl *MedicationController) Search(w http.ResponseWriter, r *http.Request) {
	request := utils.BuildMedicationSearchRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.MedicationUsecase.Search(ctx, &request)
	if err != nil {
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicationsSuccessMessage, result)
}
