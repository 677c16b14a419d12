package claude

import (
	"breathbathNewsIntel/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	APIKey    string `envconfig:"ANTHROPIC_API_KEY"`
	Model     string `envconfig:"ANTHROPIC_MODEL" default:"claude-3-5-sonnet-latest"`
	MaxTokens int64  `envconfig:"ANTHROPIC_MAX_TOKENS" default:"2000"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.APIKey == "" {
		e.Err("ANTHROPIC_API_KEY cannot be empty")
	}
	if c.Model == "" {
		e.Err("ANTHROPIC_MODEL cannot be empty")
	}
	if c.MaxTokens <= 0 {
		e.Err("ANTHROPIC_MAX_TOKENS must be positive")
	}

	return e
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)

	err = envconfig.Process("anthropic", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load anthropic config")
	}

	return cfg, nil
}
