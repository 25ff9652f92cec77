package surveys

import "github.com/goccy/go-json"

// ComputeScores resolves surveyID against the catalog and folds the
// answers into per-dimension and total scores. It is a pure function:
// missing, stale, or unknown answers never fail, only an unregistered
// survey id does.
func ComputeScores(catalog *Catalog, surveyID string, answers AnswerSet) (*ScoreResult, error) {
	definition, err := catalog.GetDefinition(surveyID)
	if err != nil {
		return nil, err
	}

	result := &ScoreResult{
		DimensionScores: make(map[string]int, len(definition.Dimensions)),
	}
	declared := make(map[string]bool, len(definition.Dimensions))
	for _, dimension := range definition.Dimensions {
		result.DimensionScores[dimension.Key] = 0
		declared[dimension.Key] = true
	}

	// Ordinary pass: every answered question contributes on its own.
	for _, question := range definition.Questions {
		rawAnswer, answered := answers[question.ID]
		if !answered {
			continue
		}

		var questionScore int
		switch kind := question.Kind.(type) {
		case Slider:
			// The raw value is the score, unclamped.
			questionScore = answerAsInt(rawAnswer)
		case SingleChoice:
			if option, ok := matchOption(kind.Options, rawAnswer); ok {
				questionScore = option.Score
			}
		case Text:
			questionScore = 0
		}

		if question.Dimension != "" && declared[question.Dimension] {
			result.DimensionScores[question.Dimension] += questionScore
		}
		result.TotalScore += questionScore
	}

	// Paired pass: base * max(1, freq), both answers required.
	for _, rule := range definition.PairedRules {
		firstAnswer, firstPresent := answers[rule.FirstID]
		secondAnswer, secondPresent := answers[rule.SecondID]
		if !firstPresent || !secondPresent {
			continue
		}

		baseScore := pairedField(definition, rule.FirstID, firstAnswer, func(o Option) int { return o.BaseScore })
		freqScore := pairedField(definition, rule.SecondID, secondAnswer, func(o Option) int { return o.FreqScore })

		subscore := baseScore * maxInt(1, freqScore)
		if declared[rule.Dimension] {
			result.DimensionScores[rule.Dimension] += subscore
		}
		result.TotalScore += subscore
	}

	return result, nil
}

func pairedField(definition *SurveyDefinition, questionID string, rawAnswer interface{}, field func(Option) int) int {
	for _, question := range definition.Questions {
		if question.ID != questionID {
			continue
		}
		if kind, ok := question.Kind.(SingleChoice); ok {
			if option, matched := matchOption(kind.Options, rawAnswer); matched {
				return field(option)
			}
		}
		return 0
	}
	return 0
}

func matchOption(options []Option, rawAnswer interface{}) (Option, bool) {
	value, ok := rawAnswer.(string)
	if !ok {
		return Option{}, false
	}
	for _, option := range options {
		if option.Value == value {
			return option, true
		}
	}
	return Option{}, false
}

// answerAsInt tolerates the numeric shapes a JSON decoder may hand over.
func answerAsInt(rawAnswer interface{}) int {
	switch value := rawAnswer.(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return int(value)
	case json.Number:
		parsed, err := value.Int64()
		if err != nil {
			return 0
		}
		return int(parsed)
	default:
		return 0
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
