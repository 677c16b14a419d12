package github

import (
	"strings"

	"breathbathNewsIntel/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	Token   string `envconfig:"GITHUB_TOKEN"`
	Repo    string `envconfig:"GITHUB_REPO"`
	BaseURL string `envconfig:"GITHUB_BASE_URL" default:"https://api.github.com"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.Token == "" {
		e.Err("GITHUB_TOKEN cannot be empty")
	}
	if c.Repo == "" {
		e.Err("GITHUB_REPO cannot be empty")
	} else if len(strings.Split(c.Repo, "/")) != 2 {
		e.Err("GITHUB_REPO must have the owner/name format, got %q", c.Repo)
	}
	if c.BaseURL == "" {
		e.Err("GITHUB_BASE_URL cannot be empty")
	}

	return e
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)

	err = envconfig.Process("github", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load github config")
	}

	return cfg, nil
}
