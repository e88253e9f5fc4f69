package agent

import (
	"context"
	"fmt"

	"rehab_estimator/pkg/core/llm"
)

type Config struct {
	ActiveProvider string                 `yaml:"active_provider"`
	Agents         map[string]AgentConfig `yaml:"agents"`
}

type AgentConfig struct {
	Provider    string `yaml:"provider"` // Optional override
	Description string `yaml:"description"`
}

type Manager struct {
	config    Config
	providers map[string]llm.Provider
}

func NewManager(config Config) *Manager {
	return &Manager{
		config: config,
		providers: map[string]llm.Provider{
			"gemini":        &llm.GeminiProvider{},
			"gemini-legacy": &llm.LegacyGeminiProvider{},
			"openai":        &llm.OpenAIProvider{},
		},
	}
}

func (m *Manager) GetProvider(agentType string) llm.Provider {
	// 1. Check for agent-specific override
	if agentConfig, ok := m.config.Agents[agentType]; ok && agentConfig.Provider != "" {
		if p, ok := m.providers[agentConfig.Provider]; ok {
			return p
		}
	}

	// 2. Use global active provider
	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p
	}

	// 3. Fallback
	return m.providers["gemini"]
}

// ExecuteRequest adapts instructions for the routed provider and runs
// the generation call.
func (m *Manager) ExecuteRequest(ctx context.Context, agentType string, req llm.Request) (*llm.Result, error) {
	provider := m.GetProvider(agentType)
	req.SystemPrompt = provider.AdaptInstructions(req.SystemPrompt)
	return provider.GenerateResponse(ctx, req)
}

func (m *Manager) SetGlobalProvider(newProvider string) error {
	if _, ok := m.providers[newProvider]; !ok {
		return fmt.Errorf("provider %s not found", newProvider)
	}
	m.config.ActiveProvider = newProvider
	fmt.Printf("Global provider set to: %s\n", newProvider)
	return nil
}

func (m *Manager) GetActiveProvider() string {
	return m.config.ActiveProvider
}

// ListProviders returns the names of all registered providers.
func (m *Manager) ListProviders() []string {
	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	return names
}
