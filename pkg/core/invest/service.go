package invest

import (
	"context"
	"fmt"
	"strings"

	"rehab_estimator/pkg/core/agent"
	"rehab_estimator/pkg/core/llm"
	"rehab_estimator/pkg/core/prompt"
	"rehab_estimator/pkg/models"
)

// Service runs the investment-analysis flow. The model supplies the
// narrative (condition, comps, exit strategies); every derived number
// is recomputed locally before the result leaves this package.
type Service struct {
	agents *agent.Manager
}

func NewService(mgr *agent.Manager) *Service {
	return &Service{agents: mgr}
}

// AnalyzeInvestment generates a fresh InvestmentAnalysis for the
// property. On ResponseFormatError the caller keeps whatever analysis
// it already displays; nothing partial is returned.
func (s *Service) AnalyzeInvestment(ctx context.Context, address string, estimation *models.Estimation, purchasePrice string) (*models.InvestmentAnalysis, DealMetrics, error) {
	if estimation == nil {
		return nil, DealMetrics{}, fmt.Errorf("investment analysis requires a rehab estimate")
	}

	repairCost := estimation.Summary.TotalEstimatedCost
	user, system, err := prompt.RenderInvestmentAnalysis(address, repairCost, conditionSummary(estimation), purchasePrice)
	if err != nil {
		return nil, DealMetrics{}, fmt.Errorf("failed to render investment prompt: %w", err)
	}

	fmt.Printf("[INVEST] Analyzing %q at price %s (repairs %s)\n", address, purchasePrice, repairCost)
	result, err := s.agents.ExecuteRequest(ctx, "investment_analysis", llm.Request{
		Prompt:       user,
		SystemPrompt: system,
		Options:      map[string]interface{}{"google_search": true},
	})
	if err != nil {
		return nil, DealMetrics{}, fmt.Errorf("investment analysis generation failed: %w", err)
	}

	raw, err := ExtractAnalysis(result.Text)
	if err != nil {
		return nil, DealMetrics{}, err
	}

	// The model echoes the repair cost back; trust the estimate instead
	// when the echo is empty.
	if raw.EstimatedRepairCost == "" {
		raw.EstimatedRepairCost = repairCost
	}

	analysis, metrics := ApplyDealMetrics(raw, purchasePrice)
	if len(analysis.GroundingSources) == 0 && len(result.Sources) > 0 {
		analysis.GroundingSources = result.Sources
	}

	fmt.Printf("[INVEST] Verdict: %s (MAO %s)\n", metrics.Verdict, metrics.SuggestedMAO)
	return analysis, metrics, nil
}

// conditionSummary flattens the itemized observations into the one-line
// property description the investment prompt expects.
func conditionSummary(estimation *models.Estimation) string {
	var parts []string
	for _, r := range estimation.Repairs {
		if r.Area == "" && r.Observations == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", r.Area, r.Observations))
	}
	if len(parts) == 0 {
		return "No detailed area observations provided."
	}
	return strings.Join(parts, ". ")
}
