package gho

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/AzielCF/az-citydata/domains/socioeconomic"
	"github.com/AzielCF/az-citydata/infrastructure/upstream"
)

// Client reads WHO Global Health Observatory indicators.
type Client struct {
	http              *upstream.Client
	baseURL           string
	indicator         string
	populationDensity float64
}

func NewClient(http *upstream.Client, baseURL, indicator string, populationDensity float64) *Client {
	return &Client{
		http:              http,
		baseURL:           strings.TrimRight(baseURL, "/"),
		indicator:         indicator,
		populationDensity: populationDensity,
	}
}

func (c *Client) PopulationDensity() float64 {
	return c.populationDensity
}

func (c *Client) indicatorURL() string {
	return fmt.Sprintf("%s/api/%s", c.baseURL, url.PathEscape(c.indicator))
}

// Profile fetches the indicator. The dataset is global: the first record is
// used whatever the city, so every city currently gets the same figure.
func (c *Client) Profile(ctx context.Context) (socioeconomic.Profile, error) {
	resp, err := c.http.Get(ctx, c.indicatorURL())
	if err != nil {
		return socioeconomic.Profile{}, err
	}
	return ParseIndicator(resp.Body, c.populationDensity, time.Now())
}

func ParseIndicator(body []byte, populationDensity float64, now time.Time) (socioeconomic.Profile, error) {
	if !gjson.ValidBytes(body) {
		return socioeconomic.Profile{}, fmt.Errorf("%w: indicator body is not json", upstream.ErrMalformed)
	}
	values := gjson.GetBytes(body, "value")
	if !values.IsArray() {
		return socioeconomic.Profile{}, fmt.Errorf("%w: indicator body has no value array", upstream.ErrMalformed)
	}

	return socioeconomic.Profile{
		PopulationDensity: populationDensity,
		MalariaCases:      recordValue(values.Get("0")),
		Timestamp:         now,
	}, nil
}

// recordValue prefers the numeric Value; GHO often ships Value as a display
// string ("1 234 [1 000-2 000]"), in which case NumericValue is used.
func recordValue(record gjson.Result) float64 {
	if v := record.Get("Value"); v.Type == gjson.Number {
		return v.Float()
	}
	if v := record.Get("NumericValue"); v.Type == gjson.Number {
		return v.Float()
	}
	return 0
}
