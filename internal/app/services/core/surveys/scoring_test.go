package surveys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeScoresFullScenario(t *testing.T) {
	catalog := NewDefaultCatalog()

	answers := AnswerSet{
		"q1":  7,
		"q2":  "often",
		"q6":  "tired_headache",
		"q13": "yellow",
		"q14": "always",
	}

	result, err := ComputeScores(catalog, "liver_short_v1", answers)
	require.NoError(t, err)

	assert.Equal(t, 17, result.TotalScore, "slider 7 + bitter 2 + wine 2 + paired 2*3")
	assert.Equal(t, 15, result.DimensionScores["bile"], "slider 7 + bitter 2 + paired 6")
	assert.Equal(t, 2, result.DimensionScores["alcohol"])
	assert.Equal(t, 0, result.DimensionScores["detox"])
	assert.Equal(t, 0, result.DimensionScores["gut"])
}

func TestComputeScoresDimensionCompleteness(t *testing.T) {
	catalog := NewDefaultCatalog()

	result, err := ComputeScores(catalog, "liver_short_v1", AnswerSet{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalScore)
	assert.Len(t, result.DimensionScores, 4, "exactly the declared dimensions, no more, no fewer")
	for _, key := range []string{"bile", "detox", "gut", "alcohol"} {
		score, ok := result.DimensionScores[key]
		assert.True(t, ok, "dimension %s must be present", key)
		assert.Equal(t, 0, score)
	}
}

func TestComputeScoresUnknownAnswerKeysAreNoOps(t *testing.T) {
	catalog := NewDefaultCatalog()

	answers := AnswerSet{
		"q1": 4,
		"q2": "sometimes",
		"q8": "often",
	}
	withExtra := AnswerSet{
		"q1":   4,
		"q2":   "sometimes",
		"q8":   "often",
		"q99":  "anything",
		"junk": 123,
	}

	base, err := ComputeScores(catalog, "liver_short_v1", answers)
	require.NoError(t, err)
	extended, err := ComputeScores(catalog, "liver_short_v1", withExtra)
	require.NoError(t, err)

	assert.Equal(t, base.TotalScore, extended.TotalScore)
	assert.Equal(t, base.DimensionScores, extended.DimensionScores)
}

func TestComputeScoresSliderValueIsScore(t *testing.T) {
	catalog := NewDefaultCatalog()

	// Out-of-range slider values are taken as-is, unclamped.
	result, err := ComputeScores(catalog, "liver_short_v1", AnswerSet{"q1": 14})
	require.NoError(t, err)
	assert.Equal(t, 14, result.TotalScore)
	assert.Equal(t, 14, result.DimensionScores["bile"])
}

func TestComputeScoresSliderNumericShapes(t *testing.T) {
	catalog := NewDefaultCatalog()

	// JSON decoding yields float64 for numbers.
	result, err := ComputeScores(catalog, "liver_short_v1", AnswerSet{"q9": float64(6)})
	require.NoError(t, err)
	assert.Equal(t, 6, result.TotalScore)
	assert.Equal(t, 6, result.DimensionScores["detox"])
}

func TestComputeScoresStaleOptionValueScoresZero(t *testing.T) {
	catalog := NewDefaultCatalog()

	result, err := ComputeScores(catalog, "liver_short_v1", AnswerSet{"q2": "removed_option"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalScore)
	assert.Equal(t, 0, result.DimensionScores["bile"])
}

func TestComputeScoresTextNeverScores(t *testing.T) {
	catalog := NewDefaultCatalog()

	result, err := ComputeScores(catalog, "liver_short_v1", AnswerSet{"q11": "magnesium, vitamin D"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalScore)
}

func TestComputeScoresPairedAmplification(t *testing.T) {
	catalog := NewDefaultCatalog()

	testCases := []struct {
		name     string
		answers  AnswerSet
		expected int
	}{
		{name: "clay often is 3*2", answers: AnswerSet{"q13": "clay", "q14": "often"}, expected: 6},
		{name: "yellow always is 2*3", answers: AnswerSet{"q13": "yellow", "q14": "always"}, expected: 6},
		{name: "freq zero keeps full base", answers: AnswerSet{"q13": "clay", "q14": "rarely"}, expected: 3},
		{name: "base zero stays zero", answers: AnswerSet{"q13": "brown", "q14": "always"}, expected: 0},
		{name: "second pair greasy film always", answers: AnswerSet{"q15": "greasy_film", "q16": "always"}, expected: 9},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ComputeScores(catalog, "liver_short_v1", tc.answers)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result.TotalScore)
			assert.Equal(t, tc.expected, result.DimensionScores["bile"])
		})
	}
}

func TestComputeScoresPairedRequiresBothAnswers(t *testing.T) {
	catalog := NewDefaultCatalog()

	onlyFirst, err := ComputeScores(catalog, "liver_short_v1", AnswerSet{"q13": "clay"})
	require.NoError(t, err)
	assert.Equal(t, 0, onlyFirst.TotalScore)
	assert.Equal(t, 0, onlyFirst.DimensionScores["bile"])

	onlySecond, err := ComputeScores(catalog, "liver_short_v1", AnswerSet{"q14": "always"})
	require.NoError(t, err)
	assert.Equal(t, 0, onlySecond.TotalScore)
	assert.Equal(t, 0, onlySecond.DimensionScores["bile"])
}

func TestComputeScoresBothPairsAccumulate(t *testing.T) {
	catalog := NewDefaultCatalog()

	result, err := ComputeScores(catalog, "liver_short_v1", AnswerSet{
		"q13": "clay",
		"q14": "often",
		"q15": "oily",
		"q16": "sometimes",
	})
	require.NoError(t, err)

	// 3*2 + 2*max(1,1)
	assert.Equal(t, 8, result.TotalScore)
	assert.Equal(t, 8, result.DimensionScores["bile"])
}

func TestComputeScoresUnknownSurveyFailsFast(t *testing.T) {
	catalog := NewDefaultCatalog()

	result, err := ComputeScores(catalog, "nonexistent", AnswerSet{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrSurveyNotFound)
}

func TestInterpretBandBoundaries(t *testing.T) {
	testCases := []struct {
		totalScore int
		level      string
	}{
		{totalScore: -5, level: BandLevelLow},
		{totalScore: 0, level: BandLevelLow},
		{totalScore: 15, level: BandLevelLow},
		{totalScore: 16, level: BandLevelMild},
		{totalScore: 17, level: BandLevelMild},
		{totalScore: 30, level: BandLevelMild},
		{totalScore: 31, level: BandLevelModerate},
		{totalScore: 45, level: BandLevelModerate},
		{totalScore: 46, level: BandLevelHigh},
		{totalScore: 120, level: BandLevelHigh},
	}

	for _, tc := range testCases {
		band := Interpret(tc.totalScore)
		assert.Equal(t, tc.level, band.Level, "total %d", tc.totalScore)
		assert.NotEmpty(t, band.Label)
		assert.NotEmpty(t, band.Description)
	}
}
