// Package llm abstracts the generative-model vendors behind one
// interface so the estimate and investment flows do not care which
// backend produced the text.
package llm

import (
	"context"

	"rehab_estimator/pkg/models"
)

// Request is one generation call. Photos are optional; providers that
// cannot take images ignore them.
type Request struct {
	Prompt       string
	SystemPrompt string
	Photos       []models.UploadedPhoto
	Options      map[string]interface{}
}

// Result carries the raw model text plus whatever citations the backend
// attached. Sources may be empty; callers must not rely on them.
type Result struct {
	Text    string
	Sources []models.GroundingSource
}

// Provider is the interface for all model vendors.
type Provider interface {
	GenerateResponse(ctx context.Context, req Request) (*Result, error)
	// AdaptInstructions transforms raw instructions into model-specific formats
	AdaptInstructions(rawInstructions string) string
}
