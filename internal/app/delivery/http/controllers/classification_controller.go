package controllers

import (
	"context"
	"net/http"
	"preop-service/internal/app/contracts"
	"preop-service/internal/pkg/constvars"
	"preop-service/internal/pkg/dto/requests"
	"preop-service/internal/pkg/exceptions"
	"preop-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ClassificationController struct {
	Log                   *zap.Logger
	ClassificationUsecase contracts.ClassificationUsecase
	RequestTimeout        time.Duration
}

func NewClassificationController(logger *zap.Logger, classificationUsecase contracts.ClassificationUsecase, requestTimeout time.Duration) *ClassificationController {
	return &ClassificationController{
		Log:                   logger,
		ClassificationUsecase: classificationUsecase,
		RequestTimeout:        requestTimeout,
	}
}

func (ctrl *ClassificationController) Classify(w http.ResponseWriter, r *http.Request) {
	var request requests.ClassifyRisk
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.ClassificationUsecase.Classify(ctx, &request)
	if err != nil {
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClassifyRiskSuccessMessage, result)
}

func (ctrl *ClassificationController) FindActivities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.ClassificationUsecase.FindActivities(ctx)
	if err != nil {
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetActivitiesSuccessMessage, result)
}
