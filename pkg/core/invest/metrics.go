package invest

import (
	"fmt"
	"math"
	"strings"

	"rehab_estimator/pkg/core/numeric"
	"rehab_estimator/pkg/models"
)

// Verdict tiers, worst to best. Holding ARV and repair cost fixed, a
// lower purchase price never moves the verdict to a worse tier.
const (
	VerdictPoor      = "Poor Deal"
	VerdictMarginal  = "Marginal Deal"
	VerdictGood      = "Good Deal"
	VerdictExcellent = "Excellent Deal"
)

// DealMetrics is the locally computed, deterministic side of an
// investment analysis. Same inputs always produce byte-identical output
// strings; the model's own MAO and verdict are never trusted.
type DealMetrics struct {
	PurchasePrice        string  `json:"purchasePrice"` // currency-formatted
	SuggestedMAO         string  `json:"suggestedMAO"`  // currency-formatted
	NumericPurchasePrice float64 `json:"numericPurchasePrice"`
	NumericARV           float64 `json:"numericARV"`
	NumericMaxRehab      float64 `json:"numericMaxRehab"`
	NumericMAO           float64 `json:"numericMAO"`
	ProfitPotential      float64 `json:"profitPotential"`
	MarginPercentage     float64 `json:"marginPercentage"`
	FitsCriteria         bool    `json:"fitsCriteria"`
	Verdict              string  `json:"verdict"`
	VerdictText          string  `json:"verdictText"`
}

// ComputeDealMetrics runs the 70% rule against the high end of the
// repair-cost range:
//
//	MAO    = ARV*0.70 - maxRehab        (negative MAO is valid: no offer works)
//	profit = ARV - price - maxRehab
//	margin = profit/ARV*100             (0 when ARV is 0)
//
// The purchase price is a bare numeric string from the form and gets a
// plain float parse; ARV and the repair range go through the normalizer.
func ComputeDealMetrics(purchasePriceText, rawARV, repairCostRangeText string) DealMetrics {
	price := numeric.ParsePlainFloat(purchasePriceText)
	arv := numeric.ParseSingleAmount(rawARV)
	maxRehab := numeric.ParseMaxOfRange(repairCostRangeText)

	mao := arv*0.70 - maxRehab
	fits := price > 0 && mao > 0 && price <= mao

	profit := arv - price - maxRehab
	margin := 0.0
	if arv != 0 {
		margin = profit / arv * 100
	}

	verdict := VerdictPoor
	switch {
	case fits && profit > 0.15*arv:
		verdict = VerdictExcellent
	case fits && profit > 0.10*arv:
		verdict = VerdictGood
	case price <= mao*1.10:
		verdict = VerdictMarginal
	}

	return DealMetrics{
		PurchasePrice:        numeric.FormatCurrency(price),
		SuggestedMAO:         numeric.FormatCurrency(mao),
		NumericPurchasePrice: price,
		NumericARV:           arv,
		NumericMaxRehab:      maxRehab,
		NumericMAO:           mao,
		ProfitPotential:      profit,
		MarginPercentage:     margin,
		FitsCriteria:         fits,
		Verdict:              verdict,
		VerdictText:          verdictText(verdict, price, mao, margin),
	}
}

// verdictText builds the fixed-format verdict sentence naming the dollar
// gap between purchase price and MAO plus the profit margin.
func verdictText(verdict string, price, mao, margin float64) string {
	gap := numeric.FormatCurrency(math.Abs(price - mao))
	direction := "under"
	if price > mao {
		direction = "over"
	}
	return fmt.Sprintf("%s: the purchase price is %s %s the Maximum Allowable Offer of %s, for a projected profit margin of %.1f%%.",
		verdict, gap, direction, numeric.FormatCurrency(mao), margin)
}

// ApplyDealMetrics recomputes the deal math for analysis and overwrites
// every numerically derived field: the calculator is the single source
// of truth, the model supplies only narrative. The verdict sentence is
// prepended to the model's analysis text, never replacing it.
// A fresh analysis value is built per call; the input is not mutated.
func ApplyDealMetrics(analysis *models.InvestmentAnalysis, purchasePriceText string) (*models.InvestmentAnalysis, DealMetrics) {
	metrics := ComputeDealMetrics(purchasePriceText, analysis.SuggestedARV, analysis.EstimatedRepairCost)

	out := *analysis
	out.PurchasePrice = metrics.PurchasePrice
	out.SuggestedMAO = metrics.SuggestedMAO
	out.InvestorFit = models.InvestorFit{
		FitsCriteria: metrics.FitsCriteria,
		Analysis:     strings.TrimSpace(metrics.VerdictText + " " + analysis.InvestorFit.Analysis),
	}
	return &out, metrics
}
