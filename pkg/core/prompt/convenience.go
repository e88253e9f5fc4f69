package prompt

// Convenience accessors for the two generation flows. IDs follow the
// folder layout under resources/prompts.

const (
	RehabEstimateID      = "estimate.rehab"
	InvestmentAnalysisID = "invest.analysis"
)

// RenderRehabEstimate builds the user prompt for a rehab-estimate call.
func RenderRehabEstimate(address, finishLevel, purchasePrice string) (user string, system string, err error) {
	pt, err := Get().GetPrompt(RehabEstimateID)
	if err != nil {
		return "", "", err
	}
	ctx := NewContext().
		Set("Address", address).
		Set("FinishLevel", finishLevel).
		Set("PurchasePrice", purchasePrice)
	user, err = RenderUserPrompt(pt, ctx)
	return user, pt.SystemPrompt, err
}

// RenderInvestmentAnalysis builds the user prompt for an
// investment-analysis call.
func RenderInvestmentAnalysis(address, repairCost, conditionSummary, purchasePrice string) (user string, system string, err error) {
	pt, err := Get().GetPrompt(InvestmentAnalysisID)
	if err != nil {
		return "", "", err
	}
	ctx := NewContext().
		Set("Address", address).
		Set("RepairCost", repairCost).
		Set("ConditionSummary", conditionSummary).
		Set("PurchasePrice", purchasePrice)
	user, err = RenderUserPrompt(pt, ctx)
	return user, pt.SystemPrompt, err
}
