package pipeline

import (
	"context"
	"fmt"
	"strings"

	"breathbathNewsIntel/pkg/news"

	"github.com/pkg/errors"
)

const maxArticlesInDigest = 25

const synthesisSystemPromptTemplate = `You are a news analyst. Synthesize the provided articles into a clean summary.

Requirements:
- Return the top %d most important/relevant headlines
- For each headline, provide exactly 2 sentences of summary
- Include specific numbers, percentages, dollar amounts when mentioned
- Focus on the most newsworthy and recent information
- Use this format:

**[Headline]**
[2-sentence summary with numbers if available]

Do not include any other text, explanations, or meta-commentary.`

const synthesisUserPromptTemplate = `Original request: %q

Here are the news articles to synthesize:

%s

Please provide the top %d headlines with summaries as specified.`

// synthesizeReport asks the language model to condense the fetched articles
// into a headline report for one topic.
func (p *Pipeline) synthesizeReport(ctx context.Context, topic string, articles []news.Article) (string, error) {
	digest := buildDigest(articles)

	system := fmt.Sprintf(synthesisSystemPromptTemplate, p.cfg.MaxHeadlines)
	user := fmt.Sprintf(synthesisUserPromptTemplate, topic, digest, p.cfg.MaxHeadlines)

	report, _, err := p.completer.Complete(ctx, system, user)
	if err != nil {
		return "", errors.Wrapf(err, "failed to synthesize a report for topic %q", topic)
	}

	return report, nil
}

func buildDigest(articles []news.Article) string {
	if len(articles) > maxArticlesInDigest {
		articles = articles[:maxArticlesInDigest]
	}

	summaries := make([]string, 0, len(articles))
	for i, article := range articles {
		contentPreview := article.Content
		if len(contentPreview) > 200 {
			contentPreview = contentPreview[:200]
		}

		summaries = append(summaries, strings.TrimSpace(fmt.Sprintf(
			`Article %d:
Headline: %s
Description: %s
Source: %s
Published: %s
Content Preview: %s`,
			i+1, article.Title, article.Description, article.Source.Name,
			article.PublishedAt.Format("2006-01-02 15:04"), contentPreview,
		)))
	}

	return strings.Join(summaries, "\n\n")
}
