package confusion

import "math"

// Metrics holds the derived statistics for a set of confusion counts.
// Every rate lies in [0, 1], or is NaN when its denominator is zero.
type Metrics struct {
	Counts

	Total      int     // TP + TN + FP + FN
	Prevalence float64 // (TP + FN) / Total

	TPR float64 // true positive rate (sensitivity, recall)
	FPR float64 // false positive rate
	FNR float64 // false negative rate
	TNR float64 // true negative rate (specificity)

	PPV float64 // positive predictive value (precision)
	NPV float64 // negative predictive value
	FDR float64 // false discovery rate, 1 - PPV
	FOR float64 // false omission rate, 1 - NPV

	LRPlus  float64 // positive likelihood ratio, TPR / FPR
	LRMinus float64 // negative likelihood ratio, FNR / TNR
	DOR     float64 // diagnostic odds ratio

	Accuracy         float64
	BalancedAccuracy float64
	Markedness       float64 // PPV + NPV - 1
	F1               float64
	FM               float64 // Fowlkes-Mallows index
	MCC              float64 // Matthews correlation coefficient
	TS               float64 // threat score (positive-class Jaccard)
}

// divide returns NaN when the denominator is zero.
func divide(n, d float64) float64 {
	if d == 0 {
		return math.NaN()
	}
	return n / d
}

// MetricsFromCounts derives the full metric set from confusion counts. It
// never fails: every ratio with a zero denominator comes back NaN, and NaN
// propagates into the metrics derived from it (FDR, FOR, markedness).
func MetricsFromCounts(c Counts) Metrics {
	tp := float64(c.TP)
	tn := float64(c.TN)
	fp := float64(c.FP)
	fn := float64(c.FN)

	positive := tp + fn
	negative := tn + fp
	total := positive + negative

	m := Metrics{
		Counts: c,
		Total:  c.TP + c.TN + c.FP + c.FN,

		Prevalence: divide(positive, total),
		TPR:        divide(tp, positive),
		FNR:        divide(fn, positive),
		TNR:        divide(tn, negative),
		FPR:        divide(fp, negative),
		PPV:        divide(tp, tp+fp),
		NPV:        divide(tn, tn+fn),
		Accuracy:   divide(tp+tn, total),
		DOR:        divide(tp*tn, fp*fn),
		F1:         divide(2*tp, 2*tp+fp+fn),
		MCC:        divide(tp*tn-fp*fn, math.Sqrt((tp+fp)*(tp+fn)*(tn+fp)*(tn+fn))),
		TS:         divide(tp, tp+fp+fn),
	}

	m.FDR = 1 - m.PPV
	m.FOR = 1 - m.NPV
	m.Markedness = m.PPV + m.NPV - 1
	m.LRPlus = divide(m.TPR, m.FPR)
	m.LRMinus = divide(m.FNR, m.TNR)
	m.BalancedAccuracy = (m.TPR + m.TNR) / 2
	m.FM = math.Sqrt(m.PPV * m.TPR)

	return m
}

// MetricsFromLabels buckets paired labels with CountsFromLabels and derives
// the full metric set. It fails only the way CountsFromLabels fails.
func MetricsFromLabels[T comparable](predicted, actual []T, opts ...Option[T]) (Metrics, error) {
	c, err := CountsFromLabels(predicted, actual, opts...)
	if err != nil {
		return Metrics{}, err
	}
	return MetricsFromCounts(c), nil
}
