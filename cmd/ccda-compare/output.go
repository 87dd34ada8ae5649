package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gofhir/fhir/r4"

	cv "github.com/gofhir/contentvalidator"
	"github.com/gofhir/contentvalidator/objective"
	"github.com/gofhir/contentvalidator/outcome"
)

// ReportOutput represents one submission in JSON output.
type ReportOutput struct {
	Submission string       `json:"submission"`
	RunID      string       `json:"runId"`
	Objective  string       `json:"objective"`
	Baseline   bool         `json:"baseline"`
	Passed     bool         `json:"passed"`
	Errors     int          `json:"errors"`
	Warnings   int          `json:"warnings"`
	Info       int          `json:"info"`
	Findings   []cv.Finding `json:"findings,omitempty"`
	Duration   string       `json:"duration"`
}

func writeReports(w io.Writer, format OutputFormat, names []string, reports []*cv.Report) error {
	switch format {
	case OutputJSON:
		return writeJSON(w, names, reports)
	case OutputOutcome:
		return writeOutcomes(w, reports)
	default:
		for i, rep := range reports {
			printTextReport(w, names[i], rep)
		}
		return nil
	}
}

func writeJSON(w io.Writer, names []string, reports []*cv.Report) error {
	out := make([]ReportOutput, 0, len(reports))
	for i, rep := range reports {
		res := rep.Result
		out = append(out, ReportOutput{
			Submission: names[i],
			RunID:      rep.RunID,
			Objective:  rep.Objective,
			Baseline:   rep.Baseline,
			Passed:     rep.Passed(),
			Errors:     res.ErrorCount(),
			Warnings:   res.WarningCount(),
			Info:       res.InfoCount(),
			Findings:   res.Findings,
			Duration:   rep.Duration.Round(time.Microsecond).String(),
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reports: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeOutcomes(w io.Writer, reports []*cv.Report) error {
	var v any
	if len(reports) == 1 {
		v = outcome.FromReport(reports[0])
	} else {
		all := make([]*r4.OperationOutcome, len(reports))
		for i, rep := range reports {
			all[i] = outcome.FromReport(rep)
		}
		v = all
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal OperationOutcome: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printTextReport(w io.Writer, name string, rep *cv.Report) {
	res := rep.Result

	status := "PASS"
	if !rep.Passed() {
		status = "FAIL"
	}

	fmt.Fprintf(w, "== %s ==\n", name)
	if o, ok := objective.Lookup(rep.Objective); ok {
		fmt.Fprintf(w, "Objective: %s (%s %s, %s)\n", o.Code, o.Criterion, o.Title, o.Setting)
	} else {
		fmt.Fprintf(w, "Objective: %s (no baseline checks)\n", rep.Objective)
	}
	fmt.Fprintf(w, "Status: %s\n", status)
	fmt.Fprintf(w, "Errors: %d, Warnings: %d, Info: %d\n", res.ErrorCount(), res.WarningCount(), res.InfoCount())
	fmt.Fprintf(w, "Duration: %s\n", rep.Duration.Round(time.Microsecond))

	if !res.IsEmpty() {
		fmt.Fprintln(w, "\nFindings:")
		for _, f := range res.Findings {
			fmt.Fprintf(w, "  %s [%s] %s\n", severityLabel(f.Severity), f.Category, f.Message)
		}
	}

	fmt.Fprintln(w)
}

func severityLabel(severity cv.Severity) string {
	switch severity {
	case cv.SeverityError:
		return "ERROR"
	case cv.SeverityWarning:
		return "WARN "
	case cv.SeverityInfo:
		return "INFO "
	default:
		return "     "
	}
}
