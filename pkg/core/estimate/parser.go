// Package estimate turns the model's free-form rehab-estimate markdown
// into a structured Estimation. Parsing here is deliberately tolerant:
// the text is model-generated and not schema-validated, so every missing
// or mangled field degrades to a default instead of failing. The strict
// counterpart lives in the invest package.
package estimate

import (
	"regexp"
	"strings"

	"rehab_estimator/pkg/core/utils"
	"rehab_estimator/pkg/models"
)

// BreakdownMarker separates the summary section from the itemized table.
const BreakdownMarker = "### Itemized Breakdown"

var (
	costPattern       = regexp.MustCompile(`\*\*Total Estimated Cost:\*\* (.+)`)
	difficultyPattern = regexp.MustCompile(`\*\*Overall Difficulty:\*\* (.+)`)
	leadingIntPattern = regexp.MustCompile(`^\d+`)
)

// ParseEstimationMarkdown never fails for any string input; worst case it
// returns an Estimation with empty fields. GroundingSources is left for
// the caller to attach from provider metadata.
func ParseEstimationMarkdown(markdown string) *models.Estimation {
	markdown = utils.CleanMarkdown(markdown)

	summarySection := markdown
	tableSection := ""
	if idx := strings.Index(markdown, BreakdownMarker); idx >= 0 {
		summarySection = markdown[:idx]
		tableSection = markdown[idx+len(BreakdownMarker):]
	}

	summary := models.EstimationSummary{
		Assumptions:      []string{},
		KeyRisks:         []string{},
		ActionableAdvice: []string{},
		GroundingSources: []models.GroundingSource{},
	}

	if m := costPattern.FindStringSubmatch(summarySection); m != nil {
		summary.TotalEstimatedCost = strings.TrimSpace(m[1])
	}
	if m := difficultyPattern.FindStringSubmatch(summarySection); m != nil {
		summary.OverallDifficulty = tolerantInt(m[1])
	}

	summary.Assumptions = parseBulletedList(summarySection, "Assumptions")
	summary.KeyRisks = parseBulletedList(summarySection, "Key Risks")
	summary.ActionableAdvice = parseBulletedList(summarySection, "Actionable Advice")

	return &models.Estimation{
		Summary: summary,
		Repairs: parseRepairTable(tableSection),
	}
}

// parseBulletedList captures everything between "**<title>:**" and the
// next bold label (or end of section), then splits it into bullets.
// Empty bullets are dropped.
func parseBulletedList(section, title string) []string {
	pattern := regexp.MustCompile(`(?s)\*\*` + regexp.QuoteMeta(title) + `:\*\*\s*(.*?)(?:\n\s*\*\*|\z)`)
	m := pattern.FindStringSubmatch(section)
	if m == nil {
		return []string{}
	}

	items := []string{}
	for _, part := range strings.Split(m[1], "*") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// parseRepairTable extracts RepairItems from the pipe-delimited table.
// The first two pipe lines (header and separator) are skipped; rows with
// fewer than 6 cells are silently dropped, since partially emitted rows
// from the model are expected.
func parseRepairTable(tableSection string) []models.RepairItem {
	if tableSection == "" {
		return []models.RepairItem{}
	}

	// Some replies render the breakdown as an HTML table instead of
	// markdown. Convert it to pipe rows before row extraction.
	if !strings.Contains(tableSection, "|") && strings.Contains(strings.ToLower(tableSection), "<table") {
		tableSection = htmlTableToPipeRows(tableSection)
	}

	var pipeRows []string
	for _, line := range strings.Split(tableSection, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "|") {
			pipeRows = append(pipeRows, strings.TrimSpace(line))
		}
	}
	if len(pipeRows) <= 2 {
		return []models.RepairItem{}
	}

	repairs := []models.RepairItem{}
	for _, row := range pipeRows[2:] {
		cells := strings.Split(row, "|")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		// cells[0] is the empty string before the leading pipe
		if len(cells) < 6 {
			continue
		}
		repairs = append(repairs, models.RepairItem{
			Area:            cells[1],
			Observations:    cells[2],
			Recommendations: cells[3],
			EstimatedCost:   cells[4],
			Difficulty:      tolerantInt(cells[5]),
		})
	}
	return repairs
}

// tolerantInt parses the leading digit run of a trimmed string.
// "3 (Medium)" -> 3, "Medium" -> 0. Zero is the unknown sentinel;
// callers must treat it as "not rated", never crash on it.
func tolerantInt(s string) int {
	digits := leadingIntPattern.FindString(strings.TrimSpace(s))
	if digits == "" {
		return 0
	}
	n := 0
	for _, d := range digits {
		n = n*10 + int(d-'0')
	}
	return n
}
