package routers

import (
	"vitaliv-service/internal/app/delivery/http/middlewares"
	"vitaliv-service/internal/app/services/core/checklists"

	"github.com/go-chi/chi/v5"
)

func attachChecklistRoutes(router chi.Router, middlewares *middlewares.Middlewares, checklistController *checklists.ChecklistController) {
	router.With(middlewares.Authenticate).Get("/", checklistController.ListItems)
	router.With(middlewares.Authenticate).Post("/", checklistController.CreateItem)
	router.With(middlewares.Authenticate).Put("/{item_id}/toggle", checklistController.ToggleItem)
	router.With(middlewares.Authenticate).Delete("/{item_id}", checklistController.DeleteItem)
}
