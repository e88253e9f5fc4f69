package store

import (
	"testing"

	"rehab_estimator/pkg/core/invest"
	"rehab_estimator/pkg/models"
)

func sampleEstimation() *models.Estimation {
	return &models.Estimation{
		Summary: models.EstimationSummary{TotalEstimatedCost: "$50,000 - $55,000"},
		Repairs: []models.RepairItem{{Area: "Kitchen", EstimatedCost: "$10,000", Difficulty: 2}},
	}
}

func TestRegistryCreateAndGet(t *testing.T) {
	reg := NewRegistry(nil)

	state := reg.Create("123 Main St", "185000", models.FinishBasic, sampleEstimation())
	if state.ID == "" {
		t.Fatal("expected a generated report id")
	}

	got, ok := reg.Get(state.ID)
	if !ok {
		t.Fatal("report not found after Create")
	}
	if got.Address != "123 Main St" || got.PurchasePrice != "185000" {
		t.Errorf("state = %+v", got)
	}
	if got.Analysis != nil {
		t.Error("fresh report should have no analysis yet")
	}

	if _, ok := reg.Get("no-such-id"); ok {
		t.Error("unknown id should not resolve without a database")
	}
}

func TestRegistrySetAnalysisReplacesWholeObject(t *testing.T) {
	reg := NewRegistry(nil)
	state := reg.Create("123 Main St", "185000", models.FinishBasic, sampleEstimation())

	first := &models.InvestmentAnalysis{SuggestedARV: "$275,000", SuggestedMAO: "$142,500"}
	if _, ok := reg.SetAnalysis(state.ID, "185000", first); !ok {
		t.Fatal("SetAnalysis failed for existing report")
	}

	second := &models.InvestmentAnalysis{SuggestedARV: "$275,000", SuggestedMAO: "$155,000"}
	updated, _ := reg.SetAnalysis(state.ID, "167000", second)

	if updated.Analysis != second {
		t.Error("analysis must be replaced wholesale, not patched")
	}
	if updated.PurchasePrice != "167000" {
		t.Errorf("price not updated: %s", updated.PurchasePrice)
	}

	if _, ok := reg.SetAnalysis("no-such-id", "1", second); ok {
		t.Error("SetAnalysis on unknown id should report failure")
	}
}

func TestFormatFailureLeavesStoredAnalysisUntouched(t *testing.T) {
	reg := NewRegistry(nil)
	state := reg.Create("123 Main St", "185000", models.FinishBasic, sampleEstimation())

	stored := &models.InvestmentAnalysis{
		PurchasePrice: "$150,000",
		SuggestedARV:  "$275,000",
		SuggestedMAO:  "$142,500",
	}
	if _, ok := reg.SetAnalysis(state.ID, "150000", stored); !ok {
		t.Fatal("SetAnalysis failed")
	}

	// A reply without a usable JSON block is a format failure; the flow
	// returns before any SetAnalysis call, so the registry never sees it.
	if _, err := invest.ExtractAnalysis("Sorry, I could not produce the analysis."); err == nil {
		t.Fatal("expected extraction to fail")
	}

	got, ok := reg.Get(state.ID)
	if !ok {
		t.Fatal("report vanished")
	}
	if got.Analysis != stored {
		t.Error("stored analysis was replaced after a failed extraction")
	}
	if got.PurchasePrice != "150000" {
		t.Errorf("stored price changed to %q", got.PurchasePrice)
	}
}
