package news

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"breathbathNewsIntel/pkg/rest"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	logging "github.com/sirupsen/logrus"
)

const (
	maxSearchRetries     = 3
	initialRetryInterval = time.Millisecond * 500
	everythingPath       = "/everything"
)

// Client talks to the NewsAPI "everything" endpoint.
type Client struct {
	cfg *Config
}

func NewClient(cfg *Config) (*Client, error) {
	validationErr := cfg.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	return &Client{cfg: cfg}, nil
}

// Search fetches articles matching the query published within the last
// daysBack days, newest first, optionally restricted to a source allow-list.
// Results are deduplicated by URL, keeping the first occurrence. Rate limited
// and server-side failures are retried with exponential backoff; auth
// failures are not.
func (c *Client) Search(ctx context.Context, query string, daysBack int, sources []string) ([]Article, error) {
	log := logging.WithContext(ctx)

	if daysBack <= 0 {
		daysBack = 1
	}
	fromDate := time.Now().UTC().AddDate(0, 0, -daysBack).Format("2006-01-02")

	params := url.Values{}
	params.Set("q", query)
	params.Set("from", fromDate)
	params.Set("language", c.cfg.Language)
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(c.cfg.PageSize))
	params.Set("apiKey", c.cfg.APIKey)
	if len(sources) > 0 {
		params.Set("sources", strings.Join(sources, ","))
	}

	log.Debugf("searching news for query %q from date %s", query, fromDate)

	searchResp := new(searchResponse)
	operation := func() error {
		*searchResp = searchResponse{}

		req := rest.NewRequester(c.cfg.BaseURL+everythingPath, searchResp)
		req.WithQuery(params)

		err := req.Request(ctx)
		if err == nil {
			return nil
		}

		if !isRetryable(err) {
			return backoff.Permanent(err)
		}

		log.Warnf("news search for query %q failed, will retry: %v", query, err)
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initialRetryInterval
	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, maxSearchRetries), ctx))
	if err != nil {
		return nil, errors.Wrapf(err, "news search for query %q failed", query)
	}

	if searchResp.Status != "ok" {
		return nil, errors.Errorf("news search for query %q rejected: %s (%s)", query, searchResp.Message, searchResp.Code)
	}

	for i := range searchResp.Articles {
		searchResp.Articles[i].SearchQuery = query
	}

	unique := dedupeByURL(searchResp.Articles)

	log.Infof("found %d articles for query %q (%d before deduplication, %d total available)",
		len(unique), query, len(searchResp.Articles), searchResp.TotalResults)

	return unique, nil
}

func isRetryable(err error) bool {
	var httpErr *rest.HTTPError
	if !errors.As(err, &httpErr) {
		// transport-level errors are worth another attempt
		return true
	}

	return httpErr.StatusCode == http.StatusTooManyRequests || httpErr.StatusCode >= 500
}

func dedupeByURL(articles []Article) []Article {
	seen := make(map[string]struct{}, len(articles))
	unique := make([]Article, 0, len(articles))

	for _, article := range articles {
		if article.URL == "" {
			continue
		}
		if _, duplicate := seen[article.URL]; duplicate {
			continue
		}

		seen[article.URL] = struct{}{}
		unique = append(unique, article)
	}

	return unique
}
