package news

import (
	"breathbathNewsIntel/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	APIKey   string `envconfig:"NEWSAPI_KEY"`
	BaseURL  string `envconfig:"NEWSAPI_BASE_URL" default:"https://newsapi.org/v2"`
	Language string `envconfig:"NEWSAPI_LANGUAGE" default:"en"`
	PageSize int    `envconfig:"NEWSAPI_PAGE_SIZE" default:"20"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.APIKey == "" {
		e.Err("NEWSAPI_KEY cannot be empty")
	}
	if c.BaseURL == "" {
		e.Err("NEWSAPI_BASE_URL cannot be empty")
	}
	if c.PageSize <= 0 {
		e.Err("NEWSAPI_PAGE_SIZE must be positive")
	}

	return e
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)

	err = envconfig.Process("newsapi", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load newsapi config")
	}

	return cfg, nil
}
