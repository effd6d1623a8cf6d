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

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type QuestionnaireController struct {
	Log                  *zap.Logger
	QuestionnaireUsecase contracts.QuestionnaireUsecase
	RequestTimeout       time.Duration
}

func NewQuestionnaireController(logger *zap.Logger, questionnaireUsecase contracts.QuestionnaireUsecase, requestTimeout time.Duration) *QuestionnaireController {
	return &QuestionnaireController{
		Log:                  logger,
		QuestionnaireUsecase: questionnaireUsecase,
		RequestTimeout:       requestTimeout,
	}
}

func (ctrl *QuestionnaireController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("QuestionnaireController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var request requests.SubmitQuestionnaire
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(&request)
	if err != nil {
		ctrl.Log.Error("QuestionnaireController.Submit error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(&request)
	if err != nil {
		ctrl.Log.Info("QuestionnaireController.Submit validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDataKey, exceptions.FormatAllValidationErrors(err)),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.QuestionnaireUsecase.Submit(ctx, &request)
	if err != nil {
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitQuestionnaireSuccessMessage, result)
}

func (ctrl *QuestionnaireController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("QuestionnaireController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
	)

	reviewed, err := utils.ParseOptionalBool(r, constvars.URLQueryParamReviewed)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.URLQueryParamReviewed))
		return
	}

	filter := &requests.QuestionnaireFilter{
		Reviewed:   reviewed,
		Pagination: utils.BuildPaginationRequest(r),
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, total, err := ctrl.QuestionnaireUsecase.FindAll(ctx, filter)
	if err != nil {
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, filter.Page, filter.PageSize, utils.RequestBaseURL(r))
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetQuestionnairesSuccessMessage, pagination, result)
}

func (ctrl *QuestionnaireController) FindByID(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("QuestionnaireController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.QuestionnaireUsecase.FindByID(ctx, questionnaireID)
	if err != nil {
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuestionnaireSuccessMessage, result)
}

func (ctrl *QuestionnaireController) FindSummaryByID(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("QuestionnaireController.FindSummaryByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.QuestionnaireUsecase.FindSummaryByID(ctx, questionnaireID)
	if err != nil {
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuestionnaireSummarySuccessMessage, result)
}

func (ctrl *QuestionnaireController) MarkReviewed(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("QuestionnaireController.MarkReviewed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
	)

	var request requests.ReviewQuestionnaire
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

	result, err := ctrl.QuestionnaireUsecase.MarkReviewed(ctx, questionnaireID, &request)
	if err != nil {
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReviewQuestionnaireSuccessMessage, result)
}

func (ctrl *QuestionnaireController) UpdateTreatment(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("QuestionnaireController.UpdateTreatment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
	)

	var request requests.UpdateTreatment
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

	result, err := ctrl.QuestionnaireUsecase.UpdateTreatment(ctx, questionnaireID, &request)
	if err != nil {
		writeUsecaseError(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTreatmentSuccessMessage, result)
}
