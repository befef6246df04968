package jtbd

import (
	"math"
	"regexp"
	"strconv"

	"github.com/node42/node42-backend/internal/domain"
)

// newLearningIndexes marks which feature rows simulate "data that
// changed since the last session". Deterministic given feature order.
var newLearningIndexes = map[int]struct{}{1: {}, 5: {}, 9: {}, 13: {}}

var kanoColumns = [4]string{"reverse", "must_be", "one_dimensional", "attractive"}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ApplyNewLearnings marks the features at indexes 1, 5, 9 and 13 (while
// below 15) as new learnings. Each marked feature has exactly one range
// column, picked by index modulo 4, rewritten with its numeric
// substrings scaled by 1.05 and rounded to two decimals. All other
// features and fields pass through untouched.
func ApplyNewLearnings(features []domain.KanoFeature) []domain.KanoFeature {
	out := make([]domain.KanoFeature, len(features))
	copy(out, features)
	for i := range out {
		if _, ok := newLearningIndexes[i]; !ok || i >= 15 {
			continue
		}
		column := kanoColumns[i%4]
		f := &out[i]
		f.IsNewLearning = true
		f.UpdatedColumn = column
		switch column {
		case "reverse":
			f.PreviousValue = f.ReverseRange
			f.ReverseRange = scaleNumbers(f.ReverseRange)
		case "must_be":
			f.PreviousValue = f.MustBeRange
			f.MustBeRange = scaleNumbers(f.MustBeRange)
		case "one_dimensional":
			f.PreviousValue = f.OneDimensionalRange
			f.OneDimensionalRange = scaleNumbers(f.OneDimensionalRange)
		case "attractive":
			f.PreviousValue = f.AttractiveRange
			f.AttractiveRange = scaleNumbers(f.AttractiveRange)
		}
	}
	return out
}

// scaleNumbers multiplies every numeric substring by 1.05, rounded to
// two decimals, leaving surrounding text unchanged.
func scaleNumbers(text string) string {
	return numberPattern.ReplaceAllStringFunc(text, func(match string) string {
		n, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return match
		}
		scaled := math.Round(n*1.05*100) / 100
		return strconv.FormatFloat(scaled, 'f', -1, 64)
	})
}
