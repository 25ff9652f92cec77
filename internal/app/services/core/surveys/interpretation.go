package surveys

// Band is one interpretation bucket over the total score. Threshold is
// the inclusive upper bound of the band.
type Band struct {
	Level       string
	Label       string
	Description string
	Threshold   int
}

const (
	BandLevelLow      = "low"
	BandLevelMild     = "mild"
	BandLevelModerate = "moderate"
	BandLevelHigh     = "high"
)

// bands are ascending and exhaustive; anything above the last threshold
// falls into the final band, anything below (negatives included) into the
// first.
var bands = []Band{
	{Level: BandLevelLow, Label: "Low probability", Description: "No sign of relevant liver strain.", Threshold: 15},
	{Level: BandLevelMild, Label: "Mild stagnation", Description: "Some indicators present, lifestyle review recommended.", Threshold: 30},
	{Level: BandLevelModerate, Label: "Moderate, warrants deeper review", Description: "Several indicators present, a consultation is advisable.", Threshold: 45},
}

var highBand = Band{
	Level:       BandLevelHigh,
	Label:       "High risk",
	Description: "Strong indicators present, please book a consultation.",
}

// Interpret maps a total score onto its band. It is a step function of
// the total alone, independent of dimension scores.
func Interpret(totalScore int) Band {
	for _, band := range bands {
		if totalScore <= band.Threshold {
			return band
		}
	}
	return highBand
}
