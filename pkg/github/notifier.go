package github

import (
	"context"
	"fmt"

	"breathbathNewsIntel/pkg/rest"

	"github.com/pkg/errors"
	logging "github.com/sirupsen/logrus"
)

var defaultLabels = []string{"news-summary", "automated"}

// Notifier publishes reports through the GitHub issues API. GitHub fans the
// actual notifications out by mail to watchers, assignees and mentioned users.
type Notifier struct {
	cfg *Config
}

func NewNotifier(cfg *Config) (*Notifier, error) {
	validationErr := cfg.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	return &Notifier{cfg: cfg}, nil
}

func (n *Notifier) addAuthHeaders(req *rest.Requester) {
	req.WithHeader("Authorization", "token "+n.cfg.Token)
	req.WithHeader("Accept", "application/vnd.github.v3+json")
}

// CreateIssue opens a new issue carrying the report. Empty labels fall back to
// the default news-summary labels.
func (n *Notifier) CreateIssue(ctx context.Context, title, body string, labels, assignees []string) (*Issue, error) {
	log := logging.WithContext(ctx)

	if len(labels) == 0 {
		labels = defaultLabels
	}
	if assignees == nil {
		assignees = []string{}
	}

	issue := new(Issue)
	req := rest.NewRequester(fmt.Sprintf("%s/repos/%s/issues", n.cfg.BaseURL, n.cfg.Repo), issue)
	req.WithPOST()
	req.WithInput(&issueRequest{
		Title:     title,
		Body:      body,
		Labels:    labels,
		Assignees: assignees,
	})
	n.addAuthHeaders(req)

	err := req.Request(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create a github issue in %q", n.cfg.Repo)
	}

	log.Infof("created github issue #%d: %s", issue.Number, issue.HTMLURL)

	return issue, nil
}

// CommentOnIssue appends the report to an existing issue, prepending @mentions
// so the mentioned users get notified too.
func (n *Notifier) CommentOnIssue(ctx context.Context, issueNumber int, body string, mentions []string) (*Comment, error) {
	log := logging.WithContext(ctx)

	if len(mentions) > 0 {
		body = MentionLine(mentions) + "\n\n" + body
	}

	comment := new(Comment)
	req := rest.NewRequester(fmt.Sprintf("%s/repos/%s/issues/%d/comments", n.cfg.BaseURL, n.cfg.Repo, issueNumber), comment)
	req.WithPOST()
	req.WithInput(&commentRequest{Body: body})
	n.addAuthHeaders(req)

	err := req.Request(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to comment on github issue #%d in %q", issueNumber, n.cfg.Repo)
	}

	log.Infof("added comment to github issue #%d: %s", issueNumber, comment.HTMLURL)

	return comment, nil
}
