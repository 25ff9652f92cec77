package surveys

const (
	QuestionKindSlider       = "slider"
	QuestionKindSingleChoice = "single_choice"
	QuestionKindText         = "text"
)

// SurveyDefinition is immutable deploy-time configuration. Question order
// defines presentation order only; scoring is order-independent apart from
// the explicit paired rules.
type SurveyDefinition struct {
	ID          string
	Title       string
	Description string
	Dimensions  []Dimension
	Questions   []Question
	PairedRules []PairedRule
}

type Dimension struct {
	Key   string
	Label string
}

// Question carries one QuestionKind variant. Dimension may be empty,
// meaning the question contributes to the grand total only.
type Question struct {
	ID        string
	Label     string
	Dimension string
	Kind      QuestionKind
}

// QuestionKind is the closed variant set over question types.
type QuestionKind interface {
	kindName() string
}

type Slider struct {
	Min int
	Max int
}

type SingleChoice struct {
	Options []Option
}

type Text struct{}

func (Slider) kindName() string       { return QuestionKindSlider }
func (SingleChoice) kindName() string { return QuestionKindSingleChoice }
func (Text) kindName() string         { return QuestionKindText }

// KindName exposes the discriminator for serialization.
func KindName(kind QuestionKind) string {
	return kind.kindName()
}

// Option is a single_choice answer value. Score feeds ordinary scoring;
// BaseScore and FreqScore feed the paired rules. Absent fields stay 0.
type Option struct {
	Value     string
	Label     string
	Score     int
	BaseScore int
	FreqScore int
}

// PairedRule amplifies FirstID's base score by SecondID's frequency score
// and credits the product to Dimension. Both answers must be present.
type PairedRule struct {
	FirstID   string
	SecondID  string
	Dimension string
}

// AnswerSet maps question id to the raw submitted value: a number for
// slider, an option value for single_choice, free text otherwise.
// Unanswered questions are simply absent.
type AnswerSet map[string]interface{}

type ScoreResult struct {
	TotalScore      int
	DimensionScores map[string]int
}
