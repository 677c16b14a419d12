package translate

import (
	"strings"

	"breathbathNewsIntel/pkg/querycache"
)

// FallbackQuery derives a search query from the topic alone, without any
// external call: the normalized topic with filler words like "news" and
// "headlines" removed. Deterministic, so a cached fallback stays stable
// across runs.
func FallbackQuery(topic string) string {
	normalized := querycache.NormalizeTopic(topic)

	words := strings.Fields(normalized)
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if word == "news" || word == "headlines" {
			continue
		}
		kept = append(kept, word)
	}

	if len(kept) == 0 {
		return normalized
	}

	return strings.Join(kept, " ")
}
