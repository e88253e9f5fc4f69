package models

// ComparableProperty is one recently sold comp. All fields are display
// strings exactly as the model wrote them; nothing here feeds the math.
type ComparableProperty struct {
	Address   string `json:"address"`
	SoldDate  string `json:"soldDate"`
	SoldPrice string `json:"soldPrice"`
	Sqft      string `json:"sqft"`
	BedBath   string `json:"bedBath"`
}

// ExitStrategy is a named disposition plan with free-text details.
type ExitStrategy struct {
	Strategy string `json:"strategy"`
	Details  string `json:"details"`
}

// InvestorFit is the model's qualitative judgement of the deal. The
// FitsCriteria flag and the leading verdict sentence of Analysis are
// overwritten by the local calculator; only the narrative tail is the
// model's own.
type InvestorFit struct {
	FitsCriteria bool   `json:"fitsCriteria"`
	Analysis     string `json:"analysis"`
}

// InvestmentAnalysis is the full result of one investment-analysis call.
// A fresh value replaces the old one whenever the purchase price changes;
// it is never patched in place.
type InvestmentAnalysis struct {
	PurchasePrice        string               `json:"purchasePrice"`
	SuggestedARV         string               `json:"suggestedARV"`
	EstimatedRepairCost  string               `json:"estimatedRepairCost"`
	SuggestedMAO         string               `json:"suggestedMAO"`
	InvestorFit          InvestorFit          `json:"investorFit"`
	PropertyCondition    string               `json:"propertyCondition"`
	EstimatedRepairLevel RepairLevel          `json:"estimatedRepairLevel"`
	Comparables          []ComparableProperty `json:"comparables"`
	ExitStrategies       []ExitStrategy       `json:"exitStrategies"`
	GroundingSources     []GroundingSource    `json:"groundingSources,omitempty"`
}
