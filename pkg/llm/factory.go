package llm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aeroquery/aeroquery/pkg/config"
)

// AgentSet holds the three configured agents of the answer pipeline.
type AgentSet struct {
	Validator  Client
	Generator  Client
	Summarizer Client
}

// NewAgents builds the validator, generator and summarizer clients from
// configuration. All three share one provider and endpoint; model and
// temperature are per-agent.
func NewAgents(cfg *config.AIConfig, logger *zap.Logger) (*AgentSet, error) {
	build := func(role string, agent config.AgentConfig) (Client, error) {
		switch cfg.Provider {
		case "openai":
			client, err := NewOpenAIClient(&OpenAIConfig{
				Endpoint:    cfg.BaseURL,
				Model:       agent.Model,
				APIKey:      cfg.APIKey,
				Temperature: agent.Temperature,
			}, logger.Named(role))
			if err != nil {
				return nil, fmt.Errorf("create %s client: %w", role, err)
			}
			return client, nil
		case "anthropic":
			client, err := NewAnthropicClient(&AnthropicConfig{
				Model:       agent.Model,
				APIKey:      cfg.APIKey,
				Temperature: agent.Temperature,
				MaxTokens:   cfg.MaxTokens,
			}, logger.Named(role))
			if err != nil {
				return nil, fmt.Errorf("create %s client: %w", role, err)
			}
			return client, nil
		default:
			return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
		}
	}

	validator, err := build("validator", cfg.Validator)
	if err != nil {
		return nil, err
	}
	generator, err := build("generator", cfg.Generator)
	if err != nil {
		return nil, err
	}
	summarizer, err := build("summarizer", cfg.Summarizer)
	if err != nil {
		return nil, err
	}

	return &AgentSet{
		Validator:  validator,
		Generator:  generator,
		Summarizer: summarizer,
	}, nil
}
