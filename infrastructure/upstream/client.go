package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"
)

// DefaultTimeout bounds every upstream call unless the client is built with another value.
const DefaultTimeout = 5 * time.Second

// ErrMalformed marks a 2xx response whose body does not have the expected shape.
var ErrMalformed = errors.New("malformed upstream response")

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d (%s)", e.StatusCode, e.URL)
}

type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Client performs single-attempt GET requests with a hard deadline. No retries.
type Client struct {
	http    *fasthttp.Client
	timeout time.Duration
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: &fasthttp.Client{
			Name:                "az-citydata",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: 30 * time.Second,
			MaxResponseBodySize: 20 * 1024 * 1024,
		},
		timeout: timeout,
	}
}

func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Get issues one GET. The deadline is the earlier of the client timeout and ctx's deadline.
func (c *Client) Get(ctx context.Context, rawURL string) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rawURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json, image/*;q=0.9, */*;q=0.8")

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return Response{}, fmt.Errorf("request %s: %w", Redact(rawURL), err)
	}

	out := Response{
		StatusCode:  resp.StatusCode(),
		ContentType: string(resp.Header.ContentType()),
		Body:        append([]byte(nil), resp.Body()...),
	}
	if out.StatusCode < fasthttp.StatusOK || out.StatusCode >= fasthttp.StatusMultipleChoices {
		return out, &StatusError{URL: Redact(rawURL), StatusCode: out.StatusCode}
	}
	return out, nil
}

var secretParams = []string{"key", "appid", "apikey", "api_key"}

// Redact hides credential query parameters so URLs can be logged or returned.
func Redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<unparseable url>"
	}
	q := u.Query()
	changed := false
	for _, p := range secretParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}
