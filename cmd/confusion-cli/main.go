package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	confusion "github.com/jamesainslie/go-confusion"
)

func main() {
	input := flag.String("input", "", "Path to CSV input file")
	positive := flag.String("positive", "", "Label treated as positive (default: \"1\" or \"true\")")
	mode := flag.String("mode", "metrics", "Mode: metrics or sweep")
	minT := flag.Float64("min", 0.0, "Sweep: lowest threshold")
	maxT := flag.Float64("max", 1.0, "Sweep: highest threshold (exclusive)")
	step := flag.Float64("step", 0.05, "Sweep: threshold step")
	top := flag.Int("top", 5, "Sweep: number of thresholds to report")

	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: confusion-cli -input FILE [OPTIONS]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	rows, err := readRows(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *input, err)
		os.Exit(1)
	}

	switch *mode {
	case "metrics":
		err = runMetrics(rows, *positive)
	case "sweep":
		err = runSweep(rows, *positive, *minT, *maxT, *step, *top)
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// readRows reads a two-column CSV, skipping an optional header row.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows in input")
	}

	first := strings.ToLower(rows[0][0])
	if first == "predicted" || first == "score" {
		rows = rows[1:]
	}
	return rows, nil
}

func runMetrics(rows [][]string, positive string) error {
	predicted := make([]string, len(rows))
	actual := make([]string, len(rows))
	for i, row := range rows {
		predicted[i] = row[0]
		actual[i] = row[1]
	}

	var opts []confusion.Option[string]
	if positive != "" {
		opts = append(opts, confusion.WithPositive(positive))
	}

	m, err := confusion.MetricsFromLabels(predicted, actual, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("Samples: %d\n", m.Total)
	fmt.Printf("Counts: tp=%d fp=%d fn=%d tn=%d\n\n", m.TP, m.FP, m.FN, m.TN)
	printReport(m)
	return nil
}

func runSweep(rows [][]string, positive string, min, max, step float64, top int) error {
	scores := make([]float64, len(rows))
	actual := make([]bool, len(rows))
	for i, row := range rows {
		s, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return fmt.Errorf("row %d: bad score %q: %w", i+1, row[0], err)
		}
		scores[i] = s
		if positive != "" {
			actual[i] = row[1] == positive
		} else {
			actual[i] = row[1] == "1" || strings.EqualFold(row[1], "true")
		}
	}

	results, err := confusion.Sweep(scores, actual, confusion.SweepThresholds(min, max, step))
	if err != nil {
		return err
	}
	if top > len(results) {
		top = len(results)
	}

	fmt.Printf("Samples: %d\n", len(rows))
	fmt.Printf("Thresholds evaluated: %d\n\n", len(results))
	fmt.Printf("%-12s %-10s %-10s %-10s %-10s\n",
		"threshold", "f1", "precision", "recall", "accuracy")
	for _, r := range results[:top] {
		fmt.Printf("%-12.4f %-10.4f %-10.4f %-10.4f %-10.4f\n",
			r.Threshold, r.Metrics.F1, r.Metrics.PPV, r.Metrics.TPR, r.Metrics.Accuracy)
	}
	return nil
}

func printReport(m confusion.Metrics) {
	rows := []struct {
		name  string
		value float64
	}{
		{"accuracy", m.Accuracy},
		{"balanced accuracy", m.BalancedAccuracy},
		{"prevalence", m.Prevalence},
		{"precision (ppv)", m.PPV},
		{"recall (tpr)", m.TPR},
		{"specificity (tnr)", m.TNR},
		{"npv", m.NPV},
		{"fpr", m.FPR},
		{"fnr", m.FNR},
		{"fdr", m.FDR},
		{"for", m.FOR},
		{"f1", m.F1},
		{"fowlkes-mallows", m.FM},
		{"mcc", m.MCC},
		{"threat score", m.TS},
		{"markedness", m.Markedness},
		{"lr+", m.LRPlus},
		{"lr-", m.LRMinus},
		{"dor", m.DOR},
	}
	for _, r := range rows {
		fmt.Printf("%-20s %10.4f\n", r.name, r.value)
	}
}
