package surveys

import (
	"context"
	"net/http"
	"strconv"
	"time"
	"vitaliv-service/internal/app/contracts"
	"vitaliv-service/internal/pkg/constvars"
	"vitaliv-service/internal/pkg/dto/requests"
	"vitaliv-service/internal/pkg/exceptions"
	"vitaliv-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SurveyController struct {
	Log           *zap.Logger
	SurveyUsecase contracts.SurveyUsecase
}

func NewSurveyController(logger *zap.Logger, surveyUsecase contracts.SurveyUsecase) *SurveyController {
	return &SurveyController{
		Log:           logger,
		SurveyUsecase: surveyUsecase,
	}
}

func (ctrl *SurveyController) ListSurveys(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.ListSurveys(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListSurveysSuccessMessage, result)
}

func (ctrl *SurveyController) GetSurvey(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "survey_id")
	if surveyID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "survey_id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.GetSurvey(ctx, surveyID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSurveySuccessMessage, result)
}

func (ctrl *SurveyController) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "survey_id")
	if surveyID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "survey_id"))
		return
	}

	request := new(requests.SubmitSurveyResponse)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	sessionData := r.Context().Value("sessionData").(string)

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result, err := ctrl.SurveyUsecase.SubmitResponse(ctx, sessionData, surveyID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitSurveyResponseSuccessMessage, result)
}

func (ctrl *SurveyController) ListResponses(w http.ResponseWriter, r *http.Request) {
	surveyID := chi.URLParam(r, "survey_id")
	if surveyID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "survey_id"))
		return
	}

	sessionData := r.Context().Value("sessionData").(string)

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}
	pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.SurveyUsecase.ListResponsesBySession(ctx, sessionData, surveyID, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListSurveyResponsesSuccessMessage, paginationData, result)
}
