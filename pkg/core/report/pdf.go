// Package report assembles the exportable property-analysis document:
// both reports in one paginated PDF with the branded footer repeated on
// every page.
package report

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"

	"rehab_estimator/pkg/models"
)

const (
	companyName = "LIKE FATHER LIKE SON INVESTMENTS"
	contactLine = "Trevor Finn | 410-725-8737 | letsjv.realestate@gmail.com | trevor.finn@exprealty.com"
	disclaimer  = "This report is provided for informational purposes only and is intended solely as a rough estimate for real estate investors. It is not a contractor bid, quote, or guarantee of costs. Actual repair expenses may vary. By using this report, you agree that Like Father Like Son Investments assumes no liability for investment decisions or outcomes."

	margin     = 15.0
	lineHeight = 5.0
)

// BuildPDF renders the combined report. The analysis section is
// optional; a rehab-only report is still a valid artifact.
func BuildPDF(estimation *models.Estimation, analysis *models.InvestmentAnalysis, address string) ([]byte, error) {
	if estimation == nil {
		return nil, fmt.Errorf("report requires a rehab estimation")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	// Keep the page bottom clear for the branded footer.
	pdf.SetAutoPageBreak(true, 32)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() { drawBrandedFooter(pdf) })

	pdf.AddPage()
	addMainTitle(pdf, "AI Property Analysis Report", address)
	writeRehabSection(pdf, estimation)

	if analysis != nil {
		pdf.AddPage()
		addMainTitle(pdf, "AI Property Analysis Report", address)
		writeInvestmentSection(pdf, analysis)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName derives the download name from the address, mirroring the
// report UI's convention.
func FileName(address string) string {
	slug := regexp.MustCompile(`[^a-zA-Z0-9]+`).ReplaceAllString(address, "_")
	return "Property-Analysis-" + strings.ToLower(strings.Trim(slug, "_")) + ".pdf"
}

func drawBrandedFooter(pdf *fpdf.Fpdf) {
	pageW, pageH := pdf.GetPageSize()

	pdf.SetY(pageH - 25)
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(margin, pageH-25, pageW-margin, pageH-25)

	pdf.SetY(pageH - 23)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(0, 3.5, companyName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 3.5, contactLine, "", 1, "L", false, 0, "")
	pdf.MultiCell(pageW-2*margin, 3, disclaimer, "", "L", false)

	pdf.SetY(pageH - 8)
	pdf.CellFormat(0, 4, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func addMainTitle(pdf *fpdf.Fpdf, title, subtitle string) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, subtitle, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(200, 200, 200)
	x, y := pdf.GetX(), pdf.GetY()+2
	pageW, _ := pdf.GetPageSize()
	pdf.Line(x, y, pageW-margin, y)
	pdf.SetY(y + 6)
}

func addSectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func addSubTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
}

func addKeyValue(pdf *fpdf.Fpdf, key, value string) {
	pageW, _ := pdf.GetPageSize()
	pdf.SetFont("Helvetica", "B", 10)
	x := pdf.GetX()
	pdf.CellFormat(50, lineHeight, key, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(pageW-2*margin-50, lineHeight, value, "", "L", false)
	pdf.SetX(x)
	pdf.Ln(1)
}

func addBullets(pdf *fpdf.Fpdf, items []string) {
	pageW, _ := pdf.GetPageSize()
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.MultiCell(pageW-2*margin, lineHeight, "- "+item, "", "L", false)
	}
	pdf.Ln(2)
}

func writeRehabSection(pdf *fpdf.Fpdf, estimation *models.Estimation) {
	addSectionTitle(pdf, "Rehab Estimate")

	s := estimation.Summary
	addKeyValue(pdf, "Total Estimated Cost:", s.TotalEstimatedCost)
	difficulty := "unknown"
	if s.OverallDifficulty > 0 {
		difficulty = fmt.Sprintf("%d/5", s.OverallDifficulty)
	}
	addKeyValue(pdf, "Overall Difficulty:", difficulty)

	if len(s.KeyRisks) > 0 {
		addSubTitle(pdf, "Key Risks")
		addBullets(pdf, s.KeyRisks)
	}
	if len(s.ActionableAdvice) > 0 {
		addSubTitle(pdf, "Actionable Advice")
		addBullets(pdf, s.ActionableAdvice)
	}
	if len(s.Assumptions) > 0 {
		addSubTitle(pdf, "Assumptions & Notes")
		addBullets(pdf, s.Assumptions)
	}

	addSubTitle(pdf, "Itemized Breakdown")
	rows := make([][]string, 0, len(estimation.Repairs))
	for _, r := range estimation.Repairs {
		rows = append(rows, []string{r.Area, r.Recommendations, r.EstimatedCost, fmt.Sprintf("%d/5", r.Difficulty)})
	}
	drawTable(pdf,
		[]string{"Area", "Recommendations", "Est. Cost", "Difficulty"},
		[]float64{35, 85, 35, 25},
		rows,
		22, 163, 74) // green header, matching the report theme

	if len(s.GroundingSources) > 0 {
		pdf.Ln(3)
		addSubTitle(pdf, "Data Sources")
		var lines []string
		for _, src := range s.GroundingSources {
			lines = append(lines, fmt.Sprintf("%s (%s)", src.Title, src.URI))
		}
		addBullets(pdf, lines)
	}
}

func writeInvestmentSection(pdf *fpdf.Fpdf, analysis *models.InvestmentAnalysis) {
	addSectionTitle(pdf, "Investment Analysis")

	addKeyValue(pdf, "Purchase Price:", analysis.PurchasePrice)
	addKeyValue(pdf, "Suggested ARV:", analysis.SuggestedARV)
	addKeyValue(pdf, "Estimated Repair Cost:", analysis.EstimatedRepairCost)
	addKeyValue(pdf, "Suggested MAO:", analysis.SuggestedMAO)

	addSubTitle(pdf, "Deal Analysis")
	pageW, _ := pdf.GetPageSize()
	if analysis.InvestorFit.FitsCriteria {
		pdf.SetTextColor(34, 139, 34)
	} else {
		pdf.SetTextColor(220, 20, 60)
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(pageW-2*margin, lineHeight, analysis.InvestorFit.Analysis, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)

	addSubTitle(pdf, "Property Condition")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(pageW-2*margin, lineHeight,
		fmt.Sprintf("%s (Est. Rehab Level: %s)", analysis.PropertyCondition, analysis.EstimatedRepairLevel),
		"", "L", false)
	pdf.Ln(3)

	addSubTitle(pdf, "Comparable Sales")
	rows := make([][]string, 0, len(analysis.Comparables))
	for _, c := range analysis.Comparables {
		rows = append(rows, []string{c.Address, c.SoldDate, c.SoldPrice, c.Sqft, c.BedBath})
	}
	drawTable(pdf,
		[]string{"Address", "Sold Date", "Sold Price", "SqFt", "Bed/Bath"},
		[]float64{60, 25, 30, 25, 40},
		rows,
		2, 132, 199) // blue header

	if len(analysis.ExitStrategies) > 0 {
		pdf.Ln(3)
		addSubTitle(pdf, "Exit Strategies")
		for _, strat := range analysis.ExitStrategies {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(2, 132, 199)
			pdf.CellFormat(0, lineHeight, strat.Strategy, "", 1, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(pageW-2*margin, lineHeight, strat.Details, "", "L", false)
			pdf.Ln(1)
		}
	}
}

// drawTable renders a grid table with a filled header row and wrapped
// body cells. Row height follows the tallest cell.
func drawTable(pdf *fpdf.Fpdf, headers []string, widths []float64, rows [][]string, r, g, b int) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(r, g, b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(180, 180, 180)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		heights := 1
		for i, cell := range row {
			if n := len(pdf.SplitText(cell, widths[i]-2)); n > heights {
				heights = n
			}
		}
		rowH := float64(heights) * lineHeight

		// Manual page break so a row never straddles the footer.
		_, pageH := pdf.GetPageSize()
		if pdf.GetY()+rowH > pageH-32 {
			pdf.AddPage()
		}

		x, y := pdf.GetX(), pdf.GetY()
		for i, cell := range row {
			pdf.Rect(x, y, widths[i], rowH, "D")
			pdf.SetXY(x+1, y)
			pdf.MultiCell(widths[i]-2, lineHeight, cell, "", "L", false)
			x += widths[i]
			pdf.SetXY(x, y)
		}
		pdf.SetXY(margin, y+rowH)
	}
}
