package files

import (
	"context"
	"net/http"
	"time"
	"vitaliv-service/internal/app/contracts"
	"vitaliv-service/internal/pkg/constvars"
	"vitaliv-service/internal/pkg/exceptions"
	"vitaliv-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type FileController struct {
	Log         *zap.Logger
	FileUsecase contracts.FileUsecase
}

func NewFileController(logger *zap.Logger, fileUsecase contracts.FileUsecase) *FileController {
	return &FileController{
		Log:         logger,
		FileUsecase: fileUsecase,
	}
}

func (ctrl *FileController) ListFiles(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value("sessionData").(string)

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result, err := ctrl.FileUsecase.ListFilesBySession(ctx, sessionData)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListFilesSuccessMessage, result)
}
