package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"google.golang.org/genai"

	"rehab_estimator/pkg/models"
)

// GeminiProvider implements the Provider interface on the official
// GenAI SDK. This is the primary backend: it handles the multimodal
// photo parts and exposes Google Search grounding metadata, which feeds
// the report's grounding sources.
type GeminiProvider struct {
	Model string // e.g. "gemini-2.0-flash"
}

// Ensure interface compliance
var _ Provider = (*GeminiProvider)(nil)

func (p *GeminiProvider) GenerateResponse(ctx context.Context, req Request) (*Result, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	model := p.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if val, ok := req.Options["model"].(string); ok && val != "" {
		model = val
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.1)),
	}

	if req.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{
				{Text: req.SystemPrompt},
			},
		}
	}

	if val, ok := req.Options["google_search"].(bool); ok && val {
		config.Tools = []*genai.Tool{
			{GoogleSearchRetrieval: &genai.GoogleSearchRetrieval{}},
		}
	}

	// Text first, then one inline part per photo. Photos with payloads
	// that do not decode are dropped rather than failing the request.
	parts := []*genai.Part{{Text: req.Prompt}}
	for _, photo := range req.Photos {
		data, err := base64.StdEncoding.DecodeString(photo.Base64Data)
		if err != nil {
			fmt.Printf("[GEMINI] Skipping photo %s: bad base64 payload\n", photo.Name)
			continue
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: photo.MimeType, Data: data},
		})
	}

	result, err := client.Models.GenerateContent(
		ctx,
		model,
		[]*genai.Content{{Parts: parts}},
		config,
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generation failed: %w", err)
	}

	out := &Result{Text: result.Text()}

	// Grounding metadata becomes the report's source list.
	if len(result.Candidates) > 0 {
		cand := result.Candidates[0]
		if cand.GroundingMetadata != nil {
			for _, chunk := range cand.GroundingMetadata.GroundingChunks {
				if chunk.Web != nil {
					out.Sources = append(out.Sources, models.GroundingSource{
						URI:   chunk.Web.URI,
						Title: chunk.Web.Title,
					})
				}
			}
		}
	}

	return out, nil
}

func (p *GeminiProvider) AdaptInstructions(raw string) string {
	return raw
}
