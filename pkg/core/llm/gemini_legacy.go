package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	legacygenai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// LegacyGeminiProvider talks to Gemini through the older
// generative-ai-go SDK. Kept as a fallback backend for environments
// pinned to that client; it does not surface grounding metadata, so
// estimates produced through it carry an empty source list.
type LegacyGeminiProvider struct {
	Model string
}

var _ Provider = (*LegacyGeminiProvider)(nil)

func (p *LegacyGeminiProvider) GenerateResponse(ctx context.Context, req Request) (*Result, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := legacygenai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	name := p.Model
	if name == "" {
		name = "gemini-2.0-flash"
	}
	model := client.GenerativeModel(name)
	if req.SystemPrompt != "" {
		model.SystemInstruction = &legacygenai.Content{
			Parts: []legacygenai.Part{legacygenai.Text(req.SystemPrompt)},
		}
	}

	parts := []legacygenai.Part{legacygenai.Text(req.Prompt)}
	for _, photo := range req.Photos {
		data, err := base64.StdEncoding.DecodeString(photo.Base64Data)
		if err != nil {
			fmt.Printf("[GEMINI-LEGACY] Skipping photo %s: bad base64 payload\n", photo.Name)
			continue
		}
		parts = append(parts, legacygenai.Blob{MIMEType: photo.MimeType, Data: data})
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini generation failed: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(legacygenai.Text); ok {
				sb.WriteString(string(txt))
			}
		}
	}

	return &Result{Text: sb.String()}, nil
}

func (p *LegacyGeminiProvider) AdaptInstructions(raw string) string {
	return raw
}
