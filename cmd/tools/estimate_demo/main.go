// Offline walkthrough of the parse-and-calculate pipeline: feeds a
// canned model response through the markdown parser, the JSON
// extractor, and the deal calculator, then renders the PDF. No API
// keys or network needed.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"rehab_estimator/pkg/core/estimate"
	"rehab_estimator/pkg/core/invest"
	"rehab_estimator/pkg/core/report"
)

const sampleEstimateResponse = `Based on the photos, this property needs a moderate cosmetic rehab.

**Total Estimated Cost:** $45,000 - $50,000

**Overall Difficulty:** 3

**Assumptions:**
* Pricing assumes mid-grade finishes throughout
* No structural or foundation issues visible in photos

**Key Risks:**
* Roof age could not be confirmed from photos
* Electrical panel may need a full replacement

**Actionable Advice:**
* Get a sewer scope before closing
* Budget a 10% contingency on top of the estimate

### Itemized Breakdown

| Area | Observations | Recommendations | Estimated Cost | Difficulty |
|------|--------------|-----------------|----------------|------------|
| Kitchen | Dated cabinets and counters | Replace cabinets, install quartz counters | $12,000 | 3 |
| Bathrooms | Worn fixtures, old tile | Full refresh of both bathrooms | $9,000 | 3 |
| Flooring | Carpet throughout, worn | LVP throughout main level | $7,500 | 2 |
| Exterior | Peeling paint | Full exterior repaint | $6,000 | 2 |
| Roof | Aged shingles | Tear-off and re-shingle | $12,500 | 4 |
`

const sampleInvestResponse = "Here is the analysis you requested:\n\n```json\n" + `{
  "purchasePrice": "",
  "suggestedARV": "$275,000",
  "estimatedRepairCost": "$45,000 - $50,000",
  "estimatedRepairLevel": "Medium",
  "suggestedMAO": "",
  "propertyCondition": "Dated but structurally sound, typical 1990s finishes throughout.",
  "investorFit": {
    "fitsCriteria": false,
    "analysis": "Comparable sales support the ARV, but margins are thin at typical list prices in this area."
  },
  "comparables": [
    {"address": "125 Main St", "soldDate": "2026-05-01", "soldPrice": "$270,000", "sqft": "1,450", "bedBath": "3/2"},
    {"address": "98 Oak Ave", "soldDate": "2026-03-14", "soldPrice": "$281,000", "sqft": "1,520", "bedBath": "3/2.5"}
  ],
  "exitStrategies": [
    {"strategy": "Fix and Flip", "details": "Renovate to neighborhood standard and resell near ARV."},
    {"strategy": "BRRRR", "details": "Refinance after rehab and hold as a rental."}
  ]
}` + "\n```\n"

func main() {
	address := "123 Main St, Baltimore, MD 21201"
	purchasePrice := "185000" // bare numeric, as the price field submits it

	fmt.Println("=== Rehab Estimate ===")
	estimation := estimate.ParseEstimationMarkdown(sampleEstimateResponse)
	fmt.Printf("Total: %s, difficulty %d/5, %d repair items\n",
		estimation.Summary.TotalEstimatedCost,
		estimation.Summary.OverallDifficulty,
		len(estimation.Repairs))
	for _, r := range estimation.Repairs {
		fmt.Printf("  %-10s %-12s %s\n", r.Area, r.EstimatedCost, r.Recommendations)
	}

	fmt.Println("\n=== Investment Analysis ===")
	raw, err := invest.ExtractAnalysis(sampleInvestResponse)
	if err != nil {
		fmt.Printf("extraction failed: %v\n", err)
		os.Exit(1)
	}
	analysis, metrics := invest.ApplyDealMetrics(raw, purchasePrice)

	out, _ := json.MarshalIndent(metrics, "", "  ")
	fmt.Println(string(out))
	fmt.Printf("\nVerdict: %s\n", metrics.Verdict)
	fmt.Printf("Investor fit: %s\n", analysis.InvestorFit.Analysis)

	fmt.Println("\n=== PDF Report ===")
	pdfBytes, err := report.BuildPDF(estimation, analysis, address)
	if err != nil {
		fmt.Printf("pdf generation failed: %v\n", err)
		os.Exit(1)
	}
	outPath := report.FileName(address)
	if err := os.WriteFile(outPath, pdfBytes, 0644); err != nil {
		fmt.Printf("write failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", outPath, len(pdfBytes))
}
