package internal

import (
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/gnolang/ndcheck/internal/proof"
	tt "github.com/gnolang/ndcheck/internal/types"
)

const (
	tabWidth = 8
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	validStyle   = color.New(color.FgGreen, color.Bold)
)

// FormatReport renders every failure of report with the proof line it
// was raised on, in the style of compiler diagnostics.
func FormatReport(filename string, doc *proof.Document, report tt.Report) string {
	var builder strings.Builder
	for i, resp := range report.Lines {
		if resp.Valid {
			continue
		}
		builder.WriteString(formatFailureHeader(filename, resp))
		if i < len(doc.Lines) {
			builder.WriteString(formatProofLine(doc.Lines[i], resp.Message))
		} else {
			builder.WriteString(formatMessage(resp.Message))
		}
	}

	if !report.Conclusion.Valid {
		builder.WriteString(formatFailureHeader(filename, report.Conclusion))
		if last := doc.Last(); last != nil {
			builder.WriteString(formatProofLine(last, report.Conclusion.Message))
		} else {
			builder.WriteString(formatMessage(report.Conclusion.Message))
		}
	}
	return builder.String()
}

// FormatSummary renders the one-line verdict for a proof file.
func FormatSummary(filename string, report tt.Report) string {
	if report.Valid {
		return validStyle.Sprint("ok: ") + fileStyle.Sprint(filename) + "\n"
	}
	failures := len(report.Failures())
	noun := "errors"
	if failures == 1 {
		noun = "error"
	}
	return errorStyle.Sprint("invalid: ") + fileStyle.Sprint(filename) +
		messageStyle.Sprintf(" (%d %s)", failures, noun) + "\n"
}

func formatFailureHeader(filename string, resp tt.Response) string {
	location := filename
	if resp.Line != "" {
		location += ":" + resp.Line
	}
	return errorStyle.Sprint("error: ") + ruleStyle.Sprint(resp.Kind) + "\n" +
		lineStyle.Sprint(" --> ") + fileStyle.Sprint(location) + "\n"
}

func formatProofLine(line *proof.Line, message string) string {
	var result strings.Builder

	label := line.Label()
	padding := strings.Repeat(" ", max(len(label)-1, 0))
	result.WriteString(lineStyle.Sprintf("  %s|\n", padding))

	formula := expandTabs(line.Formula)
	result.WriteString(lineStyle.Sprintf("%s | ", label))
	result.WriteString(formula)
	result.WriteString(ruleStyle.Sprintf("  [%s]\n", line.Rule))

	width := max(utf8.RuneCountInString(formula), 1)
	result.WriteString(lineStyle.Sprintf("  %s| ", padding))
	result.WriteString(messageStyle.Sprintf("%s\n", strings.Repeat("~", width)))
	result.WriteString(lineStyle.Sprintf("  %s| ", padding))
	result.WriteString(messageStyle.Sprintf("%s\n\n", message))

	return result.String()
}

func formatMessage(message string) string {
	return lineStyle.Sprint("  = ") + messageStyle.Sprintf("%s\n\n", message)
}

func expandTabs(line string) string {
	var expanded strings.Builder
	for i, ch := range line {
		if ch == '\t' {
			spaceCount := tabWidth - (i % tabWidth)
			expanded.WriteString(strings.Repeat(" ", spaceCount))
		} else {
			expanded.WriteRune(ch)
		}
	}
	return expanded.String()
}
