package confusion

import (
	"fmt"
	"strings"
)

// Counts holds the four cells of a binary confusion matrix.
type Counts struct {
	TP int // true positives
	TN int // true negatives
	FP int // false positives
	FN int // false negatives
}

// CountsFromLabels buckets paired predicted/actual labels into confusion
// counts. By default an element is positive when it is boolean true, a
// number equal to 1, or the string "1" or "true" (case-insensitive); all
// other values, including labels of unsupported types, are negative. Use
// WithPositive to designate a different positive label.
//
// Returns ErrLengthMismatch when the slices differ in length.
func CountsFromLabels[T comparable](predicted, actual []T, opts ...Option[T]) (Counts, error) {
	if len(predicted) != len(actual) {
		return Counts{}, fmt.Errorf("%w: predicted %d, actual %d",
			ErrLengthMismatch, len(predicted), len(actual))
	}

	cfg := config[T]{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var c Counts
	for i := range predicted {
		p := cfg.isPositive(predicted[i])
		a := cfg.isPositive(actual[i])
		switch {
		case p && a:
			c.TP++
		case p && !a:
			c.FP++
		case !p && a:
			c.FN++
		default:
			c.TN++
		}
	}
	return c, nil
}

func (c *config[T]) isPositive(v T) bool {
	if c.hasPositive {
		return v == c.positive
	}
	return defaultPositive(v)
}

// defaultPositive implements the type-dependent positivity rule. Only the
// literal strings "1" and "true" (any case) count as positive; "yes" and
// friends do not.
func defaultPositive(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return x == 1
	case int8:
		return x == 1
	case int16:
		return x == 1
	case int32:
		return x == 1
	case int64:
		return x == 1
	case uint:
		return x == 1
	case uint8:
		return x == 1
	case uint16:
		return x == 1
	case uint32:
		return x == 1
	case uint64:
		return x == 1
	case float32:
		return x == 1
	case float64:
		return x == 1
	case string:
		return x == "1" || strings.EqualFold(x, "true")
	default:
		return false
	}
}
