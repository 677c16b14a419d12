package translate

import (
	"context"
	"encoding/json"
	"time"

	"breathbathNewsIntel/pkg/querycache"

	logging "github.com/sirupsen/logrus"
)

const systemPrompt = `You are a search strategy expert. Convert user requests into effective news search queries.

Rules:
- Return ONLY the search query, no other text
- The query should be 2-4 words max for a news search API
- Include industry-specific terms when relevant
- Avoid overly broad or overly specific terms`

const userPromptTemplate = `Convert this request into one effective news search query: %q

Return only the query string.`

// Completer is the language model collaborator: one prompt in, generated text
// plus the raw payload out.
type Completer interface {
	Complete(ctx context.Context, system, user string) (text string, raw json.RawMessage, err error)
}

// Translator is a memoizing front end over the language model. Failed
// translations are cached permanently with a locally derived fallback query,
// so a broken topic never costs more than one external call; an operator has
// to clear the cache to force a retry.
type Translator struct {
	completer Completer
	policy    *querycache.Policy
	now       func() time.Time
}

func NewTranslator(completer Completer, policy *querycache.Policy) *Translator {
	return &Translator{
		completer: completer,
		policy:    policy,
		now:       time.Now,
	}
}

// Translate returns a search query for a topic. It never fails: on a cache hit
// the stored query is returned without touching the language model, on a
// translation failure the fallback query is returned and the failure is
// recorded so the next run hits the cache.
func (t *Translator) Translate(ctx context.Context, topic string) string {
	log := logging.WithContext(ctx)

	record, found := t.policy.Get(topic)
	if found {
		if record.Error != nil {
			log.Debugf("cache hit for topic %q with a previously failed translation, reusing fallback query %q",
				topic, record.GeneratedQuery)
		} else {
			log.Debugf("cache hit for topic %q, query %q", topic, record.GeneratedQuery)
		}
		return record.GeneratedQuery
	}

	log.Infof("cache miss for topic %q, will ask the language model", topic)

	record = t.buildRecord(ctx, topic)

	err := t.policy.Put(ctx, topic, record)
	if err != nil {
		// persistence is an optimization for future runs, the current run proceeds
		log.Warnf("failed to persist translation for topic %q: %v", topic, err)
	}

	return record.GeneratedQuery
}

func (t *Translator) buildRecord(ctx context.Context, topic string) querycache.CacheRecord {
	log := logging.WithContext(ctx)

	record := querycache.CacheRecord{
		OriginalQuery: topic,
		CreatedAt:     t.now().UTC(),
	}

	result := t.requestTranslation(ctx, topic)
	record.RawResponse = result.Raw

	if result.Err != nil {
		fallback := FallbackQuery(topic)
		log.Warnf("translation of topic %q failed, falling back to query %q: %v", topic, fallback, result.Err)

		record.GeneratedQuery = fallback
		record.Error = &querycache.TranslationError{Message: result.Err.Error()}
		return record
	}

	log.Infof("translated topic %q to query %q", topic, result.Query)

	record.GeneratedQuery = result.Query
	return record
}
