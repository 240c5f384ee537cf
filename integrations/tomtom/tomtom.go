package tomtom

import (
	"context"
	"net/url"
	"strings"

	"github.com/AzielCF/az-citydata/domains/maps"
	"github.com/AzielCF/az-citydata/infrastructure/upstream"
)

type Client struct {
	http    *upstream.Client
	baseURL string
	apiKey  string
}

func NewClient(http *upstream.Client, baseURL, apiKey string) *Client {
	return &Client{
		http:    http,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// BuildURL joins path to the base URL, injects the API key and appends the
// non-empty params. A caller-supplied key never reaches the provider.
func (c *Client) BuildURL(path string, params map[string]string) string {
	q := url.Values{}
	q.Set("key", c.apiKey)
	for k, v := range params {
		if v == "" || strings.EqualFold(k, "key") {
			continue
		}
		q.Set(k, v)
	}
	return c.baseURL + path + "?" + q.Encode()
}

// Get forwards one request and returns the body as received.
func (c *Client) Get(ctx context.Context, path string, params map[string]string) (maps.Response, error) {
	resp, err := c.http.Get(ctx, c.BuildURL(path, params))
	if err != nil {
		return maps.Response{}, err
	}
	return maps.Response{ContentType: resp.ContentType, Body: resp.Body}, nil
}
