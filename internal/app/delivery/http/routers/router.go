package routers

import (
	"fmt"
	"time"
	"vitaliv-service/internal/app/config"
	"vitaliv-service/internal/app/delivery/http/middlewares"
	"vitaliv-service/internal/app/services/core/auth"
	"vitaliv-service/internal/app/services/core/bookings"
	"vitaliv-service/internal/app/services/core/checklists"
	"vitaliv-service/internal/app/services/core/files"
	"vitaliv-service/internal/app/services/core/links"
	"vitaliv-service/internal/app/services/core/surveys"
	"vitaliv-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	surveyController *surveys.SurveyController,
	bookingController *bookings.BookingController,
	checklistController *checklists.ChecklistController,
	linkController *links.LinkController,
	fileController *files.FileController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/surveys", func(r chi.Router) {
				attachSurveyRoutes(r, middlewares, surveyController)
			})

			r.Route("/bookings", func(r chi.Router) {
				attachBookingRoutes(r, middlewares, bookingController)
			})

			r.Route("/checklists", func(r chi.Router) {
				attachChecklistRoutes(r, middlewares, checklistController)
			})

			r.Route("/links", func(r chi.Router) {
				attachLinkRoutes(r, middlewares, linkController)
			})

			r.Route("/files", func(r chi.Router) {
				attachFileRoutes(r, middlewares, fileController)
			})
		})
	})
}
