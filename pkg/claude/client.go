package claude

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pkg/errors"
	logging "github.com/sirupsen/logrus"
)

const requestTemperature = 0.3

// Client adapts the Anthropic Messages API to the single call shape the
// pipeline needs: system instructions plus one user message in, text out.
type Client struct {
	cfg *Config
	api anthropic.Client
}

func NewClient(cfg *Config) (*Client, error) {
	validationErr := cfg.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	api := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))

	return &Client{cfg: cfg, api: api}, nil
}

// Complete sends one prompt and returns the concatenated text blocks of the
// response together with the raw payload for diagnostics.
func (c *Client) Complete(ctx context.Context, system, user string) (text string, raw json.RawMessage, err error) {
	log := logging.WithContext(ctx)

	log.Debugf("claude request, model: %q, user prompt: %q", c.cfg.Model, user)

	message, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.cfg.Model),
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: anthropic.Float(requestTemperature),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", nil, errors.Wrap(err, "claude request failed")
	}

	raw, err = json.Marshal(message)
	if err != nil {
		log.Warnf("failed to serialize claude response for diagnostics: %v", err)
		raw = nil
	}

	var b strings.Builder
	for _, contentBlock := range message.Content {
		if textBlock, ok := contentBlock.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(textBlock.Text)
		}
	}

	text = strings.TrimSpace(b.String())
	if text == "" {
		return "", raw, errors.New("claude response contains no text")
	}

	return text, raw, nil
}
