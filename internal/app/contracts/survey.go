package contracts

import (
	"context"
	"vitaliv-service/internal/app/models"
	"vitaliv-service/internal/pkg/dto/requests"
	"vitaliv-service/internal/pkg/dto/responses"
)

type SurveyUsecase interface {
	ListSurveys(ctx context.Context) ([]responses.SurveySummary, error)
	GetSurvey(ctx context.Context, surveyID string) (*responses.SurveyDetail, error)
	SubmitResponse(ctx context.Context, sessionData, surveyID string, request *requests.SubmitSurveyResponse) (*responses.SurveyResponse, error)
	ListResponsesBySession(ctx context.Context, sessionData, surveyID string, page, pageSize int) (history []responses.SurveyResponse, total int, err error)
}

type SurveyResponseRepository interface {
	CreateSurveyResponse(ctx context.Context, response *models.SurveyResponse) (responseID string, err error)
	FindByUserAndSurvey(ctx context.Context, userID, surveyID string, page, pageSize int) ([]models.SurveyResponse, error)
	CountByUserAndSurvey(ctx context.Context, userID, surveyID string) (int64, error)
}
