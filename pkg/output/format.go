// Package output provides utilities for formatting and displaying simulation results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/revenue-forecast/internal/forecast"
	"github.com/iwvelando/revenue-forecast/pkg/constants"
	"github.com/iwvelando/revenue-forecast/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// histogramWidth is the length of the longest histogram bar in pretty output.
const histogramWidth = 40

// Write renders result in the named format.
func Write(w io.Writer, outputFormat string, result *forecast.Result) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return WritePretty(w, result)
	case constants.OutputFormatCSV:
		return WriteCSV(w, result)
	case constants.OutputFormatJSON:
		return WriteJSON(w, result)
	case constants.OutputFormatYAML:
		return WriteYAML(w, result)
	}
	return fmt.Errorf("unsupported output format: %s", outputFormat)
}

// WritePretty writes a human-readable report with a text histogram.
func WritePretty(w io.Writer, result *forecast.Result) error {
	p := message.NewPrinter(language.English)
	s := result.Summary
	params := result.Parameters

	lines := []string{
		fmt.Sprintf("--- Quarterly revenue simulation (%s runs, seed %d) ---", p.Sprintf("%d", params.Runs), params.Seed),
		fmt.Sprintf("Monthly mean        | %s", format.Currency(params.Mean)),
		fmt.Sprintf("Monthly std dev     | %s", format.Currency(params.StandardDeviation)),
		fmt.Sprintf("Quarterly target    | %s", format.Currency(params.Target)),
		fmt.Sprintf("Chance of exceeding | %s", format.Percentage(s.ExceedancePercentage)),
		fmt.Sprintf("Risk level          | %s", s.RiskLevel),
		fmt.Sprintf("90%% interval        | %s", format.CurrencyRange(s.P5, s.P95)),
		fmt.Sprintf("50%% interval        | %s", format.CurrencyRange(s.P25, s.P75)),
		fmt.Sprintf("Median              | %s", format.Currency(s.P50)),
		"",
		result.Headline(),
		result.RecommendationText(),
	}
	if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
		return err
	}

	if len(result.Histogram) == 0 {
		return nil
	}

	maxCount := 0
	for _, bin := range result.Histogram {
		if bin.Count > maxCount {
			maxCount = bin.Count
		}
	}
	if _, err := fmt.Fprintf(w, "\nDistribution\n"); err != nil {
		return err
	}
	for _, bin := range result.Histogram {
		bar := 0
		if maxCount > 0 {
			bar = bin.Count * histogramWidth / maxCount
		}
		if _, err := p.Fprintf(w, "%-21s | %7d | %s\n",
			format.CurrencyRange(bin.Lower, bin.Upper), bin.Count, strings.Repeat("#", bar)); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes the run parameters and summary as "metric","value" rows.
func WriteCSV(w io.Writer, result *forecast.Result) error {
	s := result.Summary
	params := result.Parameters

	rows := []struct {
		metric string
		value  string
	}{
		{"id", result.ID},
		{"mean", fmt.Sprintf("%.2f", params.Mean)},
		{"standardDeviation", fmt.Sprintf("%.2f", params.StandardDeviation)},
		{"target", fmt.Sprintf("%.2f", params.Target)},
		{"runs", fmt.Sprintf("%d", params.Runs)},
		{"seed", fmt.Sprintf("%d", params.Seed)},
		{"exceedancePercentage", fmt.Sprintf("%.4f", s.ExceedancePercentage)},
		{"p5", fmt.Sprintf("%.2f", s.P5)},
		{"p25", fmt.Sprintf("%.2f", s.P25)},
		{"p50", fmt.Sprintf("%.2f", s.P50)},
		{"p75", fmt.Sprintf("%.2f", s.P75)},
		{"p95", fmt.Sprintf("%.2f", s.P95)},
		{"riskLevel", string(s.RiskLevel)},
	}

	if _, err := fmt.Fprintf(w, `"metric","value"`+"\n"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, `"%s","%s"`+"\n", row.metric, row.value); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the result as indented JSON.
func WriteJSON(w io.Writer, result *forecast.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newReport(result))
}

// WriteYAML writes the result as YAML.
func WriteYAML(w io.Writer, result *forecast.Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newReport(result)); err != nil {
		return err
	}
	return encoder.Close()
}

// report flattens a Result with its derived text for machine-readable output.
type report struct {
	forecast.Result `yaml:",inline"`
	Headline        string `json:"headline" yaml:"headline"`
	Recommendation  string `json:"recommendation" yaml:"recommendation"`
}

func newReport(result *forecast.Result) report {
	return report{
		Result:         *result,
		Headline:       result.Headline(),
		Recommendation: result.RecommendationText(),
	}
}
