package surveys

import (
	"context"
	"sync"
	"time"
	"vitaliv-service/internal/app/contracts"
	"vitaliv-service/internal/app/models"
	"vitaliv-service/internal/pkg/constvars"
	"vitaliv-service/internal/pkg/dto/requests"
	"vitaliv-service/internal/pkg/dto/responses"
	"vitaliv-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type surveyUsecase struct {
	Catalog                  *Catalog
	SessionService           contracts.SessionService
	SurveyResponseRepository contracts.SurveyResponseRepository
	Log                      *zap.Logger
}

var (
	surveyUsecaseInstance contracts.SurveyUsecase
	onceSurveyUsecase     sync.Once
)

func NewSurveyUsecase(
	catalog *Catalog,
	sessionService contracts.SessionService,
	surveyResponseRepository contracts.SurveyResponseRepository,
	logger *zap.Logger,
) contracts.SurveyUsecase {
	onceSurveyUsecase.Do(func() {
		instance := &surveyUsecase{
			Catalog:                  catalog,
			SessionService:           sessionService,
			SurveyResponseRepository: surveyResponseRepository,
			Log:                      logger,
		}
		surveyUsecaseInstance = instance
	})
	return surveyUsecaseInstance
}

func (uc *surveyUsecase) ListSurveys(ctx context.Context) ([]responses.SurveySummary, error) {
	summaries := uc.Catalog.ListSurveys()
	response := make([]responses.SurveySummary, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, responses.SurveySummary{
			ID:          summary.ID,
			Title:       summary.Title,
			Description: summary.Description,
		})
	}
	return response, nil
}

func (uc *surveyUsecase) GetSurvey(ctx context.Context, surveyID string) (*responses.SurveyDetail, error) {
	definition, err := uc.Catalog.GetDefinition(surveyID)
	if err != nil {
		return nil, exceptions.ErrSurveyNotFound(err)
	}

	detail := &responses.SurveyDetail{
		ID:          definition.ID,
		Title:       definition.Title,
		Description: definition.Description,
		Questions:   make([]responses.SurveyQuestion, 0, len(definition.Questions)),
	}

	for _, question := range definition.Questions {
		rendered := responses.SurveyQuestion{
			ID:        question.ID,
			Label:     question.Label,
			Kind:      KindName(question.Kind),
			Dimension: question.Dimension,
		}
		switch kind := question.Kind.(type) {
		case Slider:
			min, max := kind.Min, kind.Max
			rendered.Min = &min
			rendered.Max = &max
		case SingleChoice:
			for _, option := range kind.Options {
				rendered.Options = append(rendered.Options, responses.SurveyOption{
					Value: option.Value,
					Label: option.Label,
				})
			}
		}
		detail.Questions = append(detail.Questions, rendered)
	}

	return detail, nil
}

func (uc *surveyUsecase) SubmitResponse(ctx context.Context, sessionData, surveyID string, request *requests.SubmitSurveyResponse) (*responses.SurveyResponse, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	result, err := ComputeScores(uc.Catalog, surveyID, AnswerSet(request.Answers))
	if err != nil {
		return nil, exceptions.ErrSurveyNotFound(err)
	}
	band := Interpret(result.TotalScore)

	now := time.Now()
	surveyResponse := &models.SurveyResponse{
		UserID:          session.UserID,
		SurveyID:        surveyID,
		Answers:         request.Answers,
		TotalScore:      result.TotalScore,
		DimensionScores: result.DimensionScores,
		Interpretation:  band.Level,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	responseID, err := uc.SurveyResponseRepository.CreateSurveyResponse(ctx, surveyResponse)
	if err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("SurveyUsecase.SubmitResponse scored",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("survey_id", surveyID),
		zap.Int("total_score", result.TotalScore),
		zap.String("level", band.Level),
	)

	return &responses.SurveyResponse{
		ID:          responseID,
		SurveyID:    surveyID,
		SubmittedAt: now.Format(time.RFC3339),
		Score: responses.ScoreReport{
			TotalScore:      result.TotalScore,
			DimensionScores: result.DimensionScores,
			Level:           band.Level,
			BandLabel:       band.Label,
			BandDescription: band.Description,
		},
	}, nil
}

func (uc *surveyUsecase) ListResponsesBySession(ctx context.Context, sessionData, surveyID string, page, pageSize int) ([]responses.SurveyResponse, int, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, 0, err
	}

	if _, err := uc.Catalog.GetDefinition(surveyID); err != nil {
		return nil, 0, exceptions.ErrSurveyNotFound(err)
	}

	total, err := uc.SurveyResponseRepository.CountByUserAndSurvey(ctx, session.UserID, surveyID)
	if err != nil {
		return nil, 0, err
	}

	storedResponses, err := uc.SurveyResponseRepository.FindByUserAndSurvey(ctx, session.UserID, surveyID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	history := make([]responses.SurveyResponse, 0, len(storedResponses))
	for _, stored := range storedResponses {
		band := Interpret(stored.TotalScore)
		history = append(history, responses.SurveyResponse{
			ID:          stored.ID,
			SurveyID:    stored.SurveyID,
			SubmittedAt: stored.CreatedAt.Format(time.RFC3339),
			Score: responses.ScoreReport{
				TotalScore:      stored.TotalScore,
				DimensionScores: stored.DimensionScores,
				Level:           band.Level,
				BandLabel:       band.Label,
				BandDescription: band.Description,
			},
		})
	}
	return history, int(total), nil
}
