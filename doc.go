// Package confusion computes binary classification evaluation statistics
// from confusion counts or from paired predicted/actual label sequences.
//
// # Quick Start
//
//	m, err := confusion.MetricsFromLabels(
//	    []bool{true, true, false, false},
//	    []bool{true, false, true, false},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("accuracy: %.4f f1: %.4f mcc: %.4f\n", m.Accuracy, m.F1, m.MCC)
//
// Labels may be of any comparable type. Booleans, numbers, and strings have
// built-in positivity rules; any other label type needs WithPositive:
//
//	m, err := confusion.MetricsFromLabels(predicted, actual, confusion.WithPositive("spam"))
//
// # NaN Semantics
//
// Metrics whose denominator is zero are NaN, never an error. Check with
// math.IsNaN before consuming a rate computed from degenerate inputs (for
// example, PPV when the classifier predicted no positives at all).
//
// # Thread Safety
//
// Every function is pure: it reads only its arguments and allocates its own
// result, so concurrent use needs no coordination.
package confusion
