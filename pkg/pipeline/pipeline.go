package pipeline

import (
	"context"
	"time"

	"breathbathNewsIntel/pkg/errs"
	"breathbathNewsIntel/pkg/github"
	"breathbathNewsIntel/pkg/logging"
	"breathbathNewsIntel/pkg/news"
	"breathbathNewsIntel/pkg/translate"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Translator turns a topic into a search query, memoized through the query
// translation cache.
type Translator interface {
	Translate(ctx context.Context, topic string) string
}

// Searcher fetches deduplicated articles for a query.
type Searcher interface {
	Search(ctx context.Context, query string, daysBack int, sources []string) ([]news.Article, error)
}

// Notifier publishes a finished report.
type Notifier interface {
	CreateIssue(ctx context.Context, title, body string, labels, assignees []string) (*github.Issue, error)
	CommentOnIssue(ctx context.Context, issueNumber int, body string, mentions []string) (*github.Comment, error)
}

// Pipeline runs the topics sequentially: translate, search, synthesize,
// notify. Topic count is small and the external calls dominate latency, so
// there is no per-topic concurrency.
type Pipeline struct {
	cfg        *Config
	translator Translator
	searcher   Searcher
	completer  translate.Completer
	notifier   Notifier
	now        func() time.Time
}

func New(cfg *Config, translator Translator, searcher Searcher, completer translate.Completer, notifier Notifier) (*Pipeline, error) {
	validationErr := cfg.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	return &Pipeline{
		cfg:        cfg,
		translator: translator,
		searcher:   searcher,
		completer:  completer,
		notifier:   notifier,
		now:        time.Now,
	}, nil
}

// Run processes every configured topic. A failing topic is logged and
// collected, the remaining topics still run; the combined error is returned
// at the end.
func (p *Pipeline) Run(ctx context.Context) error {
	runErrs := errs.NewMulti()

	for _, topic := range p.cfg.Topics {
		topicCtx := logging.WithTrackingId(ctx)
		log := logrus.WithContext(topicCtx)

		log.Infof("starting news intelligence pipeline for topic %q", topic)

		err := p.runTopic(topicCtx, topic)
		if err != nil {
			log.Errorf("pipeline failed for topic %q: %v", topic, err)
			runErrs.Add(errors.Wrapf(err, "topic %q", topic))
			continue
		}

		log.Infof("finished news intelligence pipeline for topic %q", topic)
	}

	if runErrs.HasErrors() {
		return runErrs
	}

	return nil
}

func (p *Pipeline) runTopic(ctx context.Context, topic string) error {
	log := logrus.WithContext(ctx)

	query := p.translator.Translate(ctx, topic)

	articles, err := p.searcher.Search(ctx, query, p.cfg.DaysBack, p.cfg.Sources)
	if err != nil {
		return err
	}

	if len(articles) == 0 {
		log.Warnf("no articles found for topic %q (query %q), skipping the report", topic, query)
		return nil
	}

	report, err := p.synthesizeReport(ctx, topic, articles)
	if err != nil {
		return err
	}

	return p.publish(ctx, topic, report)
}

func (p *Pipeline) publish(ctx context.Context, topic, report string) error {
	generatedAt := p.now().UTC()

	if p.cfg.SingleIssue {
		// mentions are prepended by the notifier, so the comment body goes without them
		body := github.FormatReport(topic, report, nil, generatedAt)
		_, err := p.notifier.CommentOnIssue(ctx, p.cfg.IssueNumber, body, p.cfg.MentionUsers)
		return err
	}

	body := github.FormatReport(topic, report, p.cfg.MentionUsers, generatedAt)
	_, err := p.notifier.CreateIssue(ctx, github.IssueTitle(topic, generatedAt), body, nil, p.cfg.Assignees)
	return err
}
