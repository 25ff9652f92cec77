package routers

import (
	"vitaliv-service/internal/app/delivery/http/middlewares"
	"vitaliv-service/internal/app/services/core/files"

	"github.com/go-chi/chi/v5"
)

func attachFileRoutes(router chi.Router, middlewares *middlewares.Middlewares, fileController *files.FileController) {
	router.With(middlewares.Authenticate).Get("/", fileController.ListFiles)
}
