package estimate

import (
	"context"
	"fmt"

	"rehab_estimator/pkg/core/agent"
	"rehab_estimator/pkg/core/llm"
	"rehab_estimator/pkg/core/prompt"
	"rehab_estimator/pkg/core/utils"
	"rehab_estimator/pkg/models"
)

// Service runs the rehab-estimate flow: prompt rendering, the
// multimodal model call, tolerant parsing, source attachment.
type Service struct {
	agents *agent.Manager
}

func NewService(mgr *agent.Manager) *Service {
	return &Service{agents: mgr}
}

// GenerateEstimate produces an Estimation for the property. The model
// call failing is an error; the markdown being degraded is not — a
// partial report is preferred to blocking the user.
func (s *Service) GenerateEstimate(ctx context.Context, address string, photos []models.UploadedPhoto, finishLevel models.FinishLevel, purchasePrice string) (*models.Estimation, error) {
	if address == "" {
		return nil, fmt.Errorf("property address is required")
	}
	if len(photos) == 0 {
		return nil, fmt.Errorf("at least one property photo is required")
	}
	if !finishLevel.IsValid() {
		return nil, fmt.Errorf("unknown finish level: %s", finishLevel)
	}

	user, system, err := prompt.RenderRehabEstimate(address, string(finishLevel), purchasePrice)
	if err != nil {
		return nil, fmt.Errorf("failed to render rehab prompt: %w", err)
	}

	fmt.Printf("[ESTIMATE] Generating rehab estimate for %q (%d photos, %s finish)\n", address, len(photos), finishLevel)
	result, err := s.agents.ExecuteRequest(ctx, "rehab_estimate", llm.Request{
		Prompt:       user,
		SystemPrompt: system,
		Photos:       photos,
		Options:      map[string]interface{}{"google_search": true},
	})
	if err != nil {
		return nil, fmt.Errorf("rehab estimate generation failed: %w", err)
	}

	// Sanity gate only: a degraded reply still goes through the tolerant
	// parser, an unusable one is just flagged in the log.
	if !utils.ValidateMarkdown(result.Text) {
		fmt.Printf("[WARNING] Estimate reply for %q is not usable markdown, fields will be empty\n", address)
	}

	estimation := ParseEstimationMarkdown(result.Text)
	if len(result.Sources) > 0 {
		estimation.Summary.GroundingSources = result.Sources
	}

	fmt.Printf("[ESTIMATE] Parsed %d repair items, cost %q\n", len(estimation.Repairs), estimation.Summary.TotalEstimatedCost)
	return estimation, nil
}
