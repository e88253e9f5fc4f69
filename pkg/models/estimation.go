package models

// GroundingSource is a citation the model attributed its claims to.
type GroundingSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// RepairItem is one row of the itemized breakdown table.
// Cost stays a display string; ranges like "$12,500 - $13,800" are kept
// verbatim and only collapsed to numbers inside the deal calculator.
type RepairItem struct {
	Area            string `json:"area"`
	Observations    string `json:"observations"`
	Recommendations string `json:"recommendations"`
	EstimatedCost   string `json:"estimatedCost"`
	Difficulty      int    `json:"difficulty"` // 1-5, 0 when the model's cell was not numeric
}

// EstimationSummary holds the project-level fields of a rehab estimate.
type EstimationSummary struct {
	TotalEstimatedCost string            `json:"totalEstimatedCost"`
	OverallDifficulty  int               `json:"overallDifficulty"` // 1-5, 0 = unknown
	Assumptions        []string          `json:"assumptions"`
	KeyRisks           []string          `json:"keyRisks"`
	ActionableAdvice   []string          `json:"actionableAdvice"`
	GroundingSources   []GroundingSource `json:"groundingSources"`
}

// Estimation is the parsed result of one rehab-estimate call.
// It is immutable after parsing except for GroundingSources, which the
// caller attaches once the provider reports its citations.
type Estimation struct {
	Summary EstimationSummary `json:"summary"`
	Repairs []RepairItem      `json:"repairs"` // source-table order, display-significant
}
