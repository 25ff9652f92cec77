package routers

import (
	"vitaliv-service/internal/app/delivery/http/middlewares"
	"vitaliv-service/internal/app/services/core/links"

	"github.com/go-chi/chi/v5"
)

func attachLinkRoutes(router chi.Router, middlewares *middlewares.Middlewares, linkController *links.LinkController) {
	router.Get("/", linkController.ListLinks)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/", linkController.CreateLink)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/{link_id}", linkController.UpdateLink)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/{link_id}", linkController.DeleteLink)
}
