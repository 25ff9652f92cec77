package surveys

import "errors"

// ErrSurveyNotFound is returned for unregistered survey ids. Callers map
// it to their own failure type; the catalog itself stays transport-free.
var ErrSurveyNotFound = errors.New("survey not found")

// Catalog holds the registered survey definitions. It is constructed once
// at startup and injected wherever definitions are needed; it is never
// mutated afterwards, so concurrent reads need no locking.
type Catalog struct {
	ordered []*SurveyDefinition
	byID    map[string]*SurveyDefinition
}

func NewCatalog(definitions ...*SurveyDefinition) *Catalog {
	catalog := &Catalog{
		ordered: make([]*SurveyDefinition, 0, len(definitions)),
		byID:    make(map[string]*SurveyDefinition, len(definitions)),
	}
	for _, definition := range definitions {
		catalog.ordered = append(catalog.ordered, definition)
		catalog.byID[definition.ID] = definition
	}
	return catalog
}

type SurveySummary struct {
	ID          string
	Title       string
	Description string
}

// ListSurveys returns lightweight summaries in registration order.
func (c *Catalog) ListSurveys() []SurveySummary {
	summaries := make([]SurveySummary, 0, len(c.ordered))
	for _, definition := range c.ordered {
		summaries = append(summaries, SurveySummary{
			ID:          definition.ID,
			Title:       definition.Title,
			Description: definition.Description,
		})
	}
	return summaries
}

// GetDefinition resolves a survey id exactly; no partial or
// case-insensitive matching.
func (c *Catalog) GetDefinition(surveyID string) (*SurveyDefinition, error) {
	definition, ok := c.byID[surveyID]
	if !ok {
		return nil, ErrSurveyNotFound
	}
	return definition, nil
}
