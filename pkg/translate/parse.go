package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Result is the typed outcome of one language model call: either a usable
// query with the raw payload, or a failure reason (the raw payload is still
// kept when the call itself succeeded but the text was unusable).
type Result struct {
	Query string
	Raw   json.RawMessage
	Err   error
}

func (t *Translator) requestTranslation(ctx context.Context, topic string) Result {
	text, raw, err := t.completer.Complete(ctx, systemPrompt, fmt.Sprintf(userPromptTemplate, topic))
	if err != nil {
		return Result{Raw: raw, Err: err}
	}

	query, err := parseQuery(text)
	if err != nil {
		return Result{Raw: raw, Err: err}
	}

	return Result{Query: query, Raw: raw}
}

// parseQuery extracts a query string from loosely formatted model output:
// code fences and surrounding quotes are stripped and the first non-empty line
// wins. Output without a usable query is rejected.
func parseQuery(text string) (string, error) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.Trim(line, "`")
		line = strings.Trim(line, "[]")
		line = strings.Trim(line, `"'`)
		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		return line, nil
	}

	return "", errors.Errorf("no usable query in model response %q", text)
}
