package routers

import (
	"vitaliv-service/internal/app/delivery/http/middlewares"
	"vitaliv-service/internal/app/services/core/surveys"

	"github.com/go-chi/chi/v5"
)

func attachSurveyRoutes(router chi.Router, middlewares *middlewares.Middlewares, surveyController *surveys.SurveyController) {
	router.Get("/", surveyController.ListSurveys)
	router.Get("/{survey_id}", surveyController.GetSurvey)
	router.With(middlewares.Authenticate).Post("/{survey_id}/responses", surveyController.SubmitResponse)
	router.With(middlewares.Authenticate).Get("/{survey_id}/responses", surveyController.ListResponses)
}
