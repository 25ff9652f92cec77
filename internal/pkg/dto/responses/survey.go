package responses

type SurveySummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SurveyDetail struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []SurveyQuestion `json:"questions"`
}

type SurveyQuestion struct {
	ID        string         `json:"id"`
	Label     string         `json:"label"`
	Kind      string         `json:"kind"`
	Dimension string         `json:"dimension,omitempty"`
	Min       *int           `json:"min,omitempty"`
	Max       *int           `json:"max,omitempty"`
	Options   []SurveyOption `json:"options,omitempty"`
}

type SurveyOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ScoreReport struct {
	TotalScore      int            `json:"total_score"`
	DimensionScores map[string]int `json:"dimension_scores"`
	Level           string         `json:"level"`
	BandLabel       string         `json:"band_label"`
	BandDescription string         `json:"band_description"`
}

type SurveyResponse struct {
	ID          string      `json:"id"`
	SurveyID    string      `json:"survey_id"`
	SubmittedAt string      `json:"submitted_at"`
	Score       ScoreReport `json:"score"`
}
