// Package invest extracts the model's investment analysis and replaces
// its numeric claims with locally computed deal metrics. Extraction is
// strict about the envelope (the fenced JSON block must exist) but
// lenient about JSON syntax inside it, since models routinely emit
// trailing commas and unquoted keys.
package invest

import (
	"regexp"

	"rehab_estimator/pkg/core/utils"
	"rehab_estimator/pkg/models"
)

var jsonFencePattern = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// ExtractAnalysis locates the ```json fenced block in responseText and
// parses it. Returns *ResponseFormatError when the fence is missing or
// its content cannot be parsed even after repair; the caller must leave
// any previously displayed analysis untouched in that case.
//
// Numeric fields (suggestedMAO, fitsCriteria, the verdict sentence) are
// still the model's at this point; ApplyDealMetrics overwrites them.
func ExtractAnalysis(responseText string) (*models.InvestmentAnalysis, error) {
	m := jsonFencePattern.FindStringSubmatch(responseText)
	if m == nil {
		return nil, &ResponseFormatError{Reason: "no fenced JSON block in response"}
	}

	var analysis models.InvestmentAnalysis
	if _, err := utils.SmartParse(m[1], &analysis); err != nil {
		return nil, &ResponseFormatError{Reason: "fenced block is not parseable JSON"}
	}

	if !analysis.EstimatedRepairLevel.IsValid() {
		analysis.EstimatedRepairLevel = models.RepairUnknown
	}
	if analysis.Comparables == nil {
		analysis.Comparables = []models.ComparableProperty{}
	}
	if analysis.ExitStrategies == nil {
		analysis.ExitStrategies = []models.ExitStrategy{}
	}

	return &analysis, nil
}
