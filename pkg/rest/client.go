package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	logging "github.com/sirupsen/logrus"
)

const defaultRequestTimeout = time.Second * 30

// HTTPError reports a non-2xx response. Callers inspect StatusCode to decide
// whether the request is worth retrying.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected response status %d: %s", e.StatusCode, e.Body)
}

// Requester is a small builder around JSON request/response HTTP calls, shared
// by the NewsAPI and GitHub collaborator clients.
type Requester struct {
	method  string
	url     string
	query   url.Values
	headers map[string]string
	input   interface{}
	output  interface{}
	timeout time.Duration
}

func NewRequester(requestURL string, target interface{}) *Requester {
	return &Requester{
		method:  http.MethodGet,
		url:     requestURL,
		headers: map[string]string{},
		output:  target,
		timeout: defaultRequestTimeout,
	}
}

func (r *Requester) WithMethod(m string) {
	r.method = m
}

func (r *Requester) WithPOST() {
	r.method = http.MethodPost
}

func (r *Requester) WithInput(i interface{}) {
	r.input = i
}

func (r *Requester) WithQuery(q url.Values) {
	r.query = q
}

func (r *Requester) WithHeader(name, value string) {
	r.headers[name] = value
}

func (r *Requester) WithBearer(key string) {
	r.WithHeader("Authorization", "Bearer "+key)
}

func (r *Requester) WithTimeout(t time.Duration) {
	if t > 0 {
		r.timeout = t
	}
}

func (r *Requester) addHeaders(httpReq *http.Request) {
	httpReq.Header.Set("Content-Type", "application/json")

	for name, value := range r.headers {
		httpReq.Header.Set(name, value)
	}
}

func (r *Requester) buildURL() string {
	if len(r.query) == 0 {
		return r.url
	}

	return r.url + "?" + r.query.Encode()
}

func (r *Requester) Request(ctx context.Context) error {
	log := logging.WithContext(ctx)

	var bodyReader io.Reader
	var requestBody []byte
	var err error
	if r.input != nil {
		requestBody, err = json.Marshal(r.input)
		if err != nil {
			return errors.Wrap(err, "failed to create an http request body")
		}

		bodyReader = bytes.NewBuffer(requestBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, r.method, r.buildURL(), bodyReader)
	if err != nil {
		return errors.Wrap(err, "failed to create an http request")
	}

	if len(requestBody) > 0 {
		log.Debugf("http request, url: %q, method: %s, body: %q", r.url, r.method, string(requestBody))
	} else {
		log.Debugf("http request, url: %q, method: %s", r.url, r.method)
	}

	r.addHeaders(httpReq)

	return r.request(httpReq, r.output)
}

func (r *Requester) request(httpReq *http.Request, target interface{}) error {
	log := logging.WithContext(httpReq.Context())

	client := &http.Client{Timeout: r.timeout}

	resp, err := client.Do(httpReq)
	if err != nil {
		return errors.Wrapf(err, "http request to %q failed", r.url)
	}

	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read response body from %q", r.url)
	}

	log.Debugf("response from %q, status: %d, body: %q", r.url, resp.StatusCode, string(responseBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(responseBody)}
	}

	if target == nil {
		return nil
	}

	err = json.Unmarshal(responseBody, target)
	if err != nil {
		return errors.Wrapf(err, "failed to interpret response from %q as json", r.url)
	}

	return nil
}
