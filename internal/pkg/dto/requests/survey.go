package requests

type SubmitSurveyResponse struct {
	Answers map[string]interface{} `json:"answers" validate:"required"`
}
