package checklists

import (
	"context"
	"net/http"
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

type ChecklistController struct {
	Log              *zap.Logger
	ChecklistUsecase contracts.ChecklistUsecase
}

func NewChecklistController(logger *zap.Logger, checklistUsecase contracts.ChecklistUsecase) *ChecklistController {
	return &ChecklistController{
		Log:              logger,
		ChecklistUsecase: checklistUsecase,
	}
}

func (ctrl *ChecklistController) ListItems(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value("sessionData").(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ChecklistUsecase.ListItemsBySession(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListChecklistSuccessMessage, result)
}

func (ctrl *ChecklistController) CreateItem(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateChecklistItem)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateChecklistItemRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	sessionData := r.Context().Value("sessionData").(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ChecklistUsecase.CreateItem(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateChecklistSuccessMessage, result)
}

func (ctrl *ChecklistController) ToggleItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "item_id"))
		return
	}

	sessionData := r.Context().Value("sessionData").(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ChecklistUsecase.ToggleItem(ctx, sessionData, itemID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ToggleChecklistSuccessMessage, result)
}

func (ctrl *ChecklistController) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "item_id"))
		return
	}

	sessionData := r.Context().Value("sessionData").(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.ChecklistUsecase.DeleteItem(ctx, sessionData, itemID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteChecklistSuccessMessage, nil)
}
