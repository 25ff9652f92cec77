package surveys

// NewDefaultCatalog registers the surveys shipped with the service.
func NewDefaultCatalog() *Catalog {
	return NewCatalog(NewLiverShortSurvey())
}

// NewLiverShortSurvey builds the short liver-health questionnaire. The
// stool colour and oiliness questions carry no plain score; they only
// feed the paired rules, so the two scoring passes never double-count.
func NewLiverShortSurvey() *SurveyDefinition {
	return &SurveyDefinition{
		ID:          "liver_short_v1",
		Title:       "Liver Health Check",
		Description: "A short self-assessment of bile flow, detoxification, gut function and alcohol load.",
		Dimensions: []Dimension{
			{Key: "bile", Label: "Bile flow"},
			{Key: "detox", Label: "Detoxification"},
			{Key: "gut", Label: "Gut function"},
			{Key: "alcohol", Label: "Alcohol load"},
		},
		Questions: []Question{
			{
				ID:        "q1",
				Label:     "How strong is the feeling of pressure under your right rib after a fatty meal? (0 = none, 10 = very strong)",
				Dimension: "bile",
				Kind:      Slider{Min: 0, Max: 10},
			},
			{
				ID:        "q2",
				Label:     "How often do you notice a bitter taste in your mouth in the morning?",
				Dimension: "bile",
				Kind: SingleChoice{Options: []Option{
					{Value: "never", Label: "Never", Score: 0},
					{Value: "sometimes", Label: "Sometimes", Score: 1},
					{Value: "often", Label: "Often", Score: 2},
					{Value: "always", Label: "Almost always", Score: 3},
				}},
			},
			{
				ID:        "q3",
				Label:     "How often do you wake up between 1 and 3 at night?",
				Dimension: "detox",
				Kind: SingleChoice{Options: []Option{
					{Value: "never", Label: "Never", Score: 0},
					{Value: "sometimes", Label: "Sometimes", Score: 1},
					{Value: "often", Label: "Often", Score: 2},
					{Value: "always", Label: "Almost every night", Score: 3},
				}},
			},
			{
				ID:        "q4",
				Label:     "How strongly do you react to smells such as perfume or exhaust fumes?",
				Dimension: "detox",
				Kind: SingleChoice{Options: []Option{
					{Value: "not_at_all", Label: "Not at all", Score: 0},
					{Value: "mildly", Label: "Mildly", Score: 1},
					{Value: "strongly", Label: "Strongly", Score: 2},
				}},
			},
			{
				ID:        "q5",
				Label:     "How regular is your digestion?",
				Dimension: "gut",
				Kind: SingleChoice{Options: []Option{
					{Value: "daily", Label: "Daily and effortless", Score: 0},
					{Value: "irregular", Label: "Irregular", Score: 1},
					{Value: "constipated", Label: "Often constipated", Score: 2},
					{Value: "alternating", Label: "Alternating constipation and diarrhoea", Score: 2},
				}},
			},
			{
				ID:        "q6",
				Label:     "How do you feel the morning after two glasses of wine?",
				Dimension: "alcohol",
				Kind: SingleChoice{Options: []Option{
					{Value: "fine", Label: "Completely fine", Score: 0},
					{Value: "slightly_dull", Label: "Slightly dull", Score: 1},
					{Value: "tired_headache", Label: "Tired with a headache", Score: 2},
					{Value: "wrecked", Label: "Wrecked for the whole day", Score: 3},
				}},
			},
			{
				ID:        "q7",
				Label:     "How often do you drink alcohol?",
				Dimension: "alcohol",
				Kind: SingleChoice{Options: []Option{
					{Value: "never", Label: "Never", Score: 0},
					{Value: "monthly", Label: "A few times a month", Score: 1},
					{Value: "weekly", Label: "Several times a week", Score: 2},
					{Value: "daily", Label: "Daily", Score: 3},
				}},
			},
			{
				ID:        "q8",
				Label:     "How often do you feel bloated after meals?",
				Dimension: "gut",
				Kind: SingleChoice{Options: []Option{
					{Value: "never", Label: "Never", Score: 0},
					{Value: "sometimes", Label: "Sometimes", Score: 1},
					{Value: "often", Label: "Often", Score: 2},
					{Value: "always", Label: "After almost every meal", Score: 3},
				}},
			},
			{
				ID:        "q9",
				Label:     "How strong is your energy dip in the early afternoon? (0 = none, 10 = can barely stay awake)",
				Dimension: "detox",
				Kind:      Slider{Min: 0, Max: 10},
			},
			{
				ID:        "q10",
				Label:     "Do you take medication on a regular basis?",
				Dimension: "",
				Kind: SingleChoice{Options: []Option{
					{Value: "no", Label: "No", Score: 0},
					{Value: "occasionally", Label: "Occasionally", Score: 1},
					{Value: "regularly", Label: "Regularly", Score: 2},
				}},
			},
			{
				ID:        "q11",
				Label:     "Which medications or supplements do you take?",
				Dimension: "",
				Kind:      Text{},
			},
			{
				ID:        "q12",
				Label:     "Do you have known food intolerances?",
				Dimension: "gut",
				Kind: SingleChoice{Options: []Option{
					{Value: "none", Label: "None", Score: 0},
					{Value: "one", Label: "One", Score: 1},
					{Value: "several", Label: "Several", Score: 2},
				}},
			},
			{
				ID:        "q13",
				Label:     "What colour is your stool most of the time?",
				Dimension: "",
				Kind: SingleChoice{Options: []Option{
					{Value: "brown", Label: "Medium brown", BaseScore: 0},
					{Value: "dark", Label: "Very dark", BaseScore: 1},
					{Value: "yellow", Label: "Yellowish", BaseScore: 2},
					{Value: "clay", Label: "Clay-coloured or pale", BaseScore: 3},
				}},
			},
			{
				ID:        "q14",
				Label:     "How often do you notice that colour?",
				Dimension: "",
				Kind: SingleChoice{Options: []Option{
					{Value: "rarely", Label: "Rarely", FreqScore: 0},
					{Value: "sometimes", Label: "Sometimes", FreqScore: 1},
					{Value: "often", Label: "Often", FreqScore: 2},
					{Value: "always", Label: "Almost always", FreqScore: 3},
				}},
			},
			{
				ID:        "q15",
				Label:     "Does your stool look oily or leave a greasy film?",
				Dimension: "",
				Kind: SingleChoice{Options: []Option{
					{Value: "not_oily", Label: "Not at all", BaseScore: 0},
					{Value: "slightly_oily", Label: "Slightly shiny", BaseScore: 1},
					{Value: "oily", Label: "Visibly oily", BaseScore: 2},
					{Value: "greasy_film", Label: "Leaves a greasy film", BaseScore: 3},
				}},
			},
			{
				ID:        "q16",
				Label:     "How often do you notice that oiliness?",
				Dimension: "",
				Kind: SingleChoice{Options: []Option{
					{Value: "rarely", Label: "Rarely", FreqScore: 0},
					{Value: "sometimes", Label: "Sometimes", FreqScore: 1},
					{Value: "often", Label: "Often", FreqScore: 2},
					{Value: "always", Label: "Almost always", FreqScore: 3},
				}},
			},
		},
		PairedRules: []PairedRule{
			{FirstID: "q13", SecondID: "q14", Dimension: "bile"},
			{FirstID: "q15", SecondID: "q16", Dimension: "bile"},
		},
	}
}
