package report

import (
	"bytes"
	"testing"

	"rehab_estimator/pkg/models"
)

func sampleEstimation() *models.Estimation {
	return &models.Estimation{
		Summary: models.EstimationSummary{
			TotalEstimatedCost: "$45,000 - $50,000",
			OverallDifficulty:  3,
			Assumptions:        []string{"Pricing based on mid-grade finishes"},
			KeyRisks:           []string{"Roof age unknown"},
			ActionableAdvice:   []string{"Get a sewer scope before closing"},
			GroundingSources: []models.GroundingSource{
				{URI: "https://example.com/comps", Title: "Local comps"},
			},
		},
		Repairs: []models.RepairItem{
			{Area: "Kitchen", Observations: "old", Recommendations: "replace cabinets and counters", EstimatedCost: "$10,000", Difficulty: 2},
			{Area: "Roof", Observations: "worn shingles", Recommendations: "full tear-off and re-shingle", EstimatedCost: "$12,000", Difficulty: 4},
		},
	}
}

func TestBuildPDFRehabOnly(t *testing.T) {
	data, err := BuildPDF(sampleEstimation(), nil, "123 Main St, Baltimore, MD")
	if err != nil {
		t.Fatalf("BuildPDF failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output is not a PDF, starts with %q", data[:8])
	}
}

func TestBuildPDFWithAnalysis(t *testing.T) {
	analysis := &models.InvestmentAnalysis{
		PurchasePrice:        "$185,000",
		SuggestedARV:         "$275,000",
		EstimatedRepairCost:  "$45,000 - $50,000",
		SuggestedMAO:         "$142,500",
		EstimatedRepairLevel: models.RepairMedium,
		PropertyCondition:    "Dated but structurally sound.",
		InvestorFit: models.InvestorFit{
			FitsCriteria: false,
			Analysis:     "Poor Deal: the purchase price is well over the Maximum Allowable Offer.",
		},
		Comparables: []models.ComparableProperty{
			{Address: "125 Main St", SoldDate: "2026-05-01", SoldPrice: "$270,000", Sqft: "1,450", BedBath: "3/2"},
		},
		ExitStrategies: []models.ExitStrategy{
			{Strategy: "Fix and Flip", Details: "Renovate to neighborhood standard and resell."},
		},
	}

	data, err := BuildPDF(sampleEstimation(), analysis, "123 Main St, Baltimore, MD")
	if err != nil {
		t.Fatalf("BuildPDF failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty PDF output")
	}
}

func TestBuildPDFRequiresEstimation(t *testing.T) {
	if _, err := BuildPDF(nil, nil, "123 Main St"); err == nil {
		t.Error("expected error for missing estimation")
	}
}

func TestFileName(t *testing.T) {
	got := FileName("123 Main St, Baltimore, MD 21201")
	want := "Property-Analysis-123_main_st_baltimore_md_21201.pdf"
	if got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}
}
