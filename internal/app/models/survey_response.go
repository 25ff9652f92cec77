package models

type SurveyResponse struct {
	ID              string                 `bson:"_id,omitempty"`
	UserID          string                 `bson:"userId"`
	SurveyID        string                 `bson:"surveyId"`
	Answers         map[string]interface{} `bson:"answers"`
	TotalScore      int                    `bson:"totalScore"`
	DimensionScores map[string]int         `bson:"dimensionScores"`
	Interpretation  string                 `bson:"interpretation"`
	TimeModel       `bson:",inline"`
}
