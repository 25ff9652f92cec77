package links

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

type LinkController struct {
	Log         *zap.Logger
	LinkUsecase contracts.LinkUsecase
}

func NewLinkController(logger *zap.Logger, linkUsecase contracts.LinkUsecase) *LinkController {
	return &LinkController{
		Log:         logger,
		LinkUsecase: linkUsecase,
	}
}

func (ctrl *LinkController) ListLinks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LinkUsecase.ListLinks(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListLinksSuccessMessage, result)
}

func (ctrl *LinkController) CreateLink(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateLink)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateLinkRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LinkUsecase.CreateLink(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateLinkSuccessMessage, result)
}

func (ctrl *LinkController) UpdateLink(w http.ResponseWriter, r *http.Request) {
	linkID := chi.URLParam(r, "link_id")
	if linkID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "link_id"))
		return
	}

	request := new(requests.UpdateLink)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateLinkRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LinkUsecase.UpdateLink(ctx, linkID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateLinkSuccessMessage, result)
}

func (ctrl *LinkController) DeleteLink(w http.ResponseWriter, r *http.Request) {
	linkID := chi.URLParam(r, "link_id")
	if linkID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "link_id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.LinkUsecase.DeleteLink(ctx, linkID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteLinkSuccessMessage, nil)
}
