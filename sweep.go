package confusion

import (
	"fmt"
	"math"
	"sort"
)

// SweepResult holds metrics for one decision threshold.
type SweepResult struct {
	Threshold float64
	Metrics   Metrics
}

// SweepThresholds generates threshold values from min to max with given step.
func SweepThresholds(min, max, step float64) []float64 {
	var thresholds []float64
	for t := min; t < max; t += step {
		thresholds = append(thresholds, t)
	}
	return thresholds
}

// Sweep evaluates a scoring classifier at multiple decision thresholds. For
// each threshold t, score >= t predicts positive. Results are sorted by F1
// descending, NaN last.
//
// Returns ErrLengthMismatch when scores and actual differ in length.
func Sweep(scores []float64, actual []bool, thresholds []float64) ([]SweepResult, error) {
	if len(scores) != len(actual) {
		return nil, fmt.Errorf("%w: scores %d, actual %d",
			ErrLengthMismatch, len(scores), len(actual))
	}

	predicted := make([]bool, len(scores))
	results := make([]SweepResult, 0, len(thresholds))

	for _, threshold := range thresholds {
		for i, s := range scores {
			predicted[i] = s >= threshold
		}
		m, err := MetricsFromLabels(predicted, actual)
		if err != nil {
			return nil, err
		}
		results = append(results, SweepResult{
			Threshold: threshold,
			Metrics:   m,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		fi, fj := results[i].Metrics.F1, results[j].Metrics.F1
		if math.IsNaN(fj) {
			return !math.IsNaN(fi)
		}
		if math.IsNaN(fi) {
			return false
		}
		return fi > fj
	})

	return results, nil
}
