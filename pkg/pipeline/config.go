package pipeline

import (
	"breathbathNewsIntel/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	Topics       []string `envconfig:"PIPELINE_TOPICS"`
	DaysBack     int      `envconfig:"PIPELINE_DAYS_BACK" default:"1"`
	MaxHeadlines int      `envconfig:"PIPELINE_MAX_HEADLINES" default:"5"`
	Sources      []string `envconfig:"PIPELINE_SOURCES"`
	MentionUsers []string `envconfig:"PIPELINE_MENTION_USERS"`
	Assignees    []string `envconfig:"PIPELINE_ASSIGNEES"`
	SingleIssue  bool     `envconfig:"PIPELINE_SINGLE_ISSUE" default:"false"`
	IssueNumber  int      `envconfig:"PIPELINE_ISSUE_NUMBER"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if len(c.Topics) == 0 {
		e.Err("PIPELINE_TOPICS cannot be empty")
	}
	if c.DaysBack <= 0 {
		e.Err("PIPELINE_DAYS_BACK must be positive")
	}
	if c.MaxHeadlines <= 0 {
		e.Err("PIPELINE_MAX_HEADLINES must be positive")
	}
	if c.SingleIssue && c.IssueNumber <= 0 {
		e.Err("PIPELINE_ISSUE_NUMBER must be set when PIPELINE_SINGLE_ISSUE is enabled")
	}

	return e
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)

	err = envconfig.Process("pipeline", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load pipeline config")
	}

	return cfg, nil
}
