// Package render formats validation results for humans. The engine emits
// only the structured record; every presentation concern lives here.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ppiankov/lithium/internal/model"
)

// Format selects an output representation
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// Render formats a result in the requested format
func Render(result *model.ValidationResult, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return JSON(result)
	case FormatMarkdown:
		return Markdown(result), nil
	case FormatText:
		return Text(result), nil
	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}

// JSON renders the raw structured record
func JSON(result *model.ValidationResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(data), nil
}

// Markdown renders a human-readable validation report
func Markdown(result *model.ValidationResult) string {
	var b strings.Builder

	b.WriteString("# Validation Report\n\n")
	fmt.Fprintf(&b, "**Overall Score:** %.1f%%  \n", result.OverallScore)
	fmt.Fprintf(&b, "**Status:** %s  \n", statusLabel(result.Passed))
	fmt.Fprintf(&b, "**Hallucination Risk:** %s\n\n", result.RiskTier)

	b.WriteString("## Key Metrics\n\n")
	fmt.Fprintf(&b, "- **Singleton Rate:** %.1f%%\n", result.SingletonRate*100)
	fmt.Fprintf(&b, "- **Validation Ratio:** %s\n", ratioLabel(result))
	fmt.Fprintf(&b, "- **Sub-scores:** pre-validation %.1f, generation %.1f, QA %.1f\n\n",
		result.Subscores.PreValidation, result.Subscores.Generation, result.Subscores.QA)

	if len(result.ConfidenceDistribution) > 0 {
		b.WriteString("## Confidence Distribution\n\n")
		for _, level := range []model.ConfidenceLevel{
			model.ConfidenceHigh, model.ConfidenceMedium, model.ConfidenceLow, model.ConfidenceUncertain,
		} {
			if count := result.ConfidenceDistribution[level]; count > 0 {
				fmt.Fprintf(&b, "- **%s:** %d claims\n", level, count)
			}
		}
		b.WriteString("\n")
	}

	if len(result.Flags) > 0 {
		b.WriteString("## Issues Found\n\n")
		for _, flag := range result.Flags {
			fmt.Fprintf(&b, "- %s\n", flagLabel(flag))
		}
		b.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for i, rec := range result.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
		b.WriteString("\n")
	}

	if result.Mode == model.ModeDetailed && len(result.Claims) > 0 {
		b.WriteString("## Claims\n\n")
		for _, c := range result.Claims {
			fmt.Fprintf(&b, "- [%s/%s, support %d] %s\n", c.Type, c.Confidence, c.SupportCount, c.Text)
			if c.Rationale != "" {
				fmt.Fprintf(&b, "  - %s\n", c.Rationale)
			}
		}
	}

	return b.String()
}

// Text renders a plain-text report
func Text(result *model.ValidationResult) string {
	var b strings.Builder

	b.WriteString("VALIDATION REPORT\n")
	b.WriteString("=================\n")
	fmt.Fprintf(&b, "Overall Score: %.1f%%\n", result.OverallScore)
	fmt.Fprintf(&b, "Status: %s\n", statusLabel(result.Passed))
	fmt.Fprintf(&b, "Hallucination Risk: %s\n", result.RiskTier)
	fmt.Fprintf(&b, "Singleton Rate: %.1f%%\n", result.SingletonRate*100)
	fmt.Fprintf(&b, "Validation Ratio: %s\n", ratioLabel(result))

	if len(result.Flags) > 0 {
		b.WriteString("\nISSUES:\n")
		for _, flag := range result.Flags {
			fmt.Fprintf(&b, "  - %s\n", flagLabel(flag))
		}
	}

	if len(result.Recommendations) > 0 {
		b.WriteString("\nRECOMMENDATIONS:\n")
		for i, rec := range result.Recommendations {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, rec)
		}
	}

	return b.String()
}

// BatchSummary renders the reduction over a batch run
func BatchSummary(summary model.BatchSummary) string {
	var b strings.Builder

	b.WriteString("BATCH SUMMARY\n")
	b.WriteString("=============\n")
	fmt.Fprintf(&b, "Passed: %d  Failed: %d\n", summary.Passed, summary.Failed)
	fmt.Fprintf(&b, "Average Score: %.1f%%\n", summary.AverageScore)
	if summary.BestIndex >= 0 {
		fmt.Fprintf(&b, "Best: #%d  Worst: #%d\n", summary.BestIndex, summary.WorstIndex)
	}

	if len(summary.RiskDistribution) > 0 {
		b.WriteString("Risk: ")
		for i, tier := range []model.RiskTier{model.RiskLow, model.RiskMedium, model.RiskHigh} {
			if i > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%s=%d", tier, summary.RiskDistribution[tier])
		}
		b.WriteString("\n")
	}

	if len(summary.CommonFlags) > 0 {
		b.WriteString("Common issues:\n")
		for _, fc := range summary.CommonFlags {
			fmt.Fprintf(&b, "  - %s (%d)\n", flagLabel(fc.Flag), fc.Count)
		}
	}

	return b.String()
}

func statusLabel(passed bool) string {
	if passed {
		return "PASSED"
	}
	return "FAILED"
}

func ratioLabel(result *model.ValidationResult) string {
	if result.FullySupported {
		return "fully supported"
	}
	return fmt.Sprintf("%.2f", result.ValidationRatio)
}

// flagLabel turns HIGH_SINGLETON_RATE into "High singleton rate"
func flagLabel(flag model.SignalFlag) string {
	words := strings.Split(strings.ToLower(string(flag)), "_")
	if len(words) > 0 && words[0] != "" {
		words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	}
	return strings.Join(words, " ")
}
