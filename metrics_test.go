package confusion

import (
	"math"
	"testing"
)

const tolerance = 1e-4

// approx fails the test unless got is within tolerance of want.
func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tolerance {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestMetricsFromCounts(t *testing.T) {
	m := MetricsFromCounts(Counts{TP: 70, FP: 10, FN: 20, TN: 100})

	if m.Total != 200 {
		t.Errorf("Total = %d, want 200", m.Total)
	}
	approx(t, "Prevalence", m.Prevalence, 0.45)
	approx(t, "TPR", m.TPR, 0.77778)
	approx(t, "FNR", m.FNR, 0.22222)
	approx(t, "TNR", m.TNR, 0.90909)
	approx(t, "FPR", m.FPR, 0.09091)
	approx(t, "PPV", m.PPV, 0.875)
	approx(t, "NPV", m.NPV, 0.83333)
	approx(t, "FDR", m.FDR, 0.125)
	approx(t, "FOR", m.FOR, 0.16667)
	approx(t, "Markedness", m.Markedness, 0.70833)
	approx(t, "LRPlus", m.LRPlus, 8.55556)
	approx(t, "LRMinus", m.LRMinus, 0.24444)
	approx(t, "DOR", m.DOR, 35)
	approx(t, "Accuracy", m.Accuracy, 0.85)
	approx(t, "BalancedAccuracy", m.BalancedAccuracy, 0.84343)
	approx(t, "F1", m.F1, 140.0/170.0)
	approx(t, "FM", m.FM, 0.82496)
	approx(t, "MCC", m.MCC, 0.69752)
	approx(t, "TS", m.TS, 0.7)

	if m.MCC <= 0.6 {
		t.Errorf("MCC = %v, want > 0.6", m.MCC)
	}
}

func TestMetricsFromCounts_ZeroCounts(t *testing.T) {
	m := MetricsFromCounts(Counts{})

	if m.Total != 0 {
		t.Errorf("Total = %d, want 0", m.Total)
	}

	nanFields := map[string]float64{
		"Prevalence":       m.Prevalence,
		"TPR":              m.TPR,
		"FPR":              m.FPR,
		"FNR":              m.FNR,
		"TNR":              m.TNR,
		"PPV":              m.PPV,
		"NPV":              m.NPV,
		"FDR":              m.FDR,
		"FOR":              m.FOR,
		"Markedness":       m.Markedness,
		"LRPlus":           m.LRPlus,
		"LRMinus":          m.LRMinus,
		"DOR":              m.DOR,
		"Accuracy":         m.Accuracy,
		"BalancedAccuracy": m.BalancedAccuracy,
		"F1":               m.F1,
		"FM":               m.FM,
		"MCC":              m.MCC,
		"TS":               m.TS,
	}
	for name, v := range nanFields {
		if !math.IsNaN(v) {
			t.Errorf("%s = %v, want NaN", name, v)
		}
	}
}

func TestMetricsFromCounts_NaNPropagation(t *testing.T) {
	// No predicted positives: PPV is NaN and everything derived from it
	// inherits the NaN.
	m := MetricsFromCounts(Counts{TN: 5, FN: 5})

	for name, v := range map[string]float64{
		"PPV":        m.PPV,
		"FDR":        m.FDR,
		"Markedness": m.Markedness,
		"FM":         m.FM,
	} {
		if !math.IsNaN(v) {
			t.Errorf("%s = %v, want NaN", name, v)
		}
	}

	// The negative-side metrics are unaffected.
	approx(t, "NPV", m.NPV, 0.5)
	approx(t, "TNR", m.TNR, 1.0)
}

func TestMetricsFromCounts_RateComplements(t *testing.T) {
	tests := []struct {
		name string
		c    Counts
	}{
		{name: "balanced", c: Counts{TP: 70, FP: 10, FN: 20, TN: 100}},
		{name: "skewed positive", c: Counts{TP: 990, FP: 3, FN: 10, TN: 7}},
		{name: "skewed negative", c: Counts{TP: 2, FP: 50, FN: 8, TN: 940}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MetricsFromCounts(tt.c)
			approx(t, "TPR+FNR", m.TPR+m.FNR, 1.0)
			approx(t, "TNR+FPR", m.TNR+m.FPR, 1.0)
		})
	}
}

func TestMetricsFromCounts_RatesInRange(t *testing.T) {
	counts := []Counts{
		{TP: 70, FP: 10, FN: 20, TN: 100},
		{TP: 1, FP: 1, FN: 1, TN: 1},
		{TP: 1000, FP: 1, FN: 1, TN: 1000},
	}

	for _, c := range counts {
		m := MetricsFromCounts(c)
		for name, v := range map[string]float64{
			"TPR":      m.TPR,
			"TNR":      m.TNR,
			"PPV":      m.PPV,
			"NPV":      m.NPV,
			"Accuracy": m.Accuracy,
			"F1":       m.F1,
			"TS":       m.TS,
		} {
			if v < 0 || v > 1 {
				t.Errorf("counts %+v: %s = %v, want in [0, 1]", c, name, v)
			}
		}
	}
}

func TestMetricsFromCounts_Deterministic(t *testing.T) {
	c := Counts{TP: 70, FP: 10, FN: 20, TN: 100}
	if MetricsFromCounts(c) != MetricsFromCounts(c) {
		t.Error("expected identical metrics for identical counts")
	}
}

func TestMetricsFromLabels(t *testing.T) {
	predicted := []bool{true, true, false, false}
	actual := []bool{true, false, true, false}

	m, err := MetricsFromLabels(predicted, actual)
	if err != nil {
		t.Fatalf("MetricsFromLabels failed: %v", err)
	}

	c, err := CountsFromLabels(predicted, actual)
	if err != nil {
		t.Fatalf("CountsFromLabels failed: %v", err)
	}
	if m != MetricsFromCounts(c) {
		t.Error("facade result differs from composing the two steps")
	}
	approx(t, "Accuracy", m.Accuracy, 0.5)
}

func TestMetricsFromLabels_LengthMismatch(t *testing.T) {
	_, err := MetricsFromLabels([]string{"1"}, []string{"1", "0"})
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}
