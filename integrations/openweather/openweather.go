package openweather

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/AzielCF/az-citydata/domains/weather"
	"github.com/AzielCF/az-citydata/infrastructure/upstream"
)

const kelvinOffset = 273.15

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

func (c *Client) currentURL(city string) string {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	return fmt.Sprintf("%s/data/2.5/weather?%s", c.baseURL, q.Encode())
}

// CurrentByCity fetches the current conditions for city.
func (c *Client) CurrentByCity(ctx context.Context, city string) (weather.Report, error) {
	resp, err := c.http.Get(ctx, c.currentURL(city))
	if err != nil {
		return weather.Report{}, err
	}
	return ParseCurrent(resp.Body, time.Now())
}

// ParseCurrent reshapes a current-weather body. main.temp (Kelvin) and wind
// are required; rain.1h is optional.
func ParseCurrent(body []byte, now time.Time) (weather.Report, error) {
	if !gjson.ValidBytes(body) {
		return weather.Report{}, fmt.Errorf("%w: weather body is not json", upstream.ErrMalformed)
	}

	temp := gjson.GetBytes(body, "main.temp")
	if temp.Type != gjson.Number {
		return weather.Report{}, fmt.Errorf("%w: weather body has no main.temp", upstream.ErrMalformed)
	}
	wind := gjson.GetBytes(body, "wind")
	if !wind.IsObject() {
		return weather.Report{}, fmt.Errorf("%w: weather body has no wind", upstream.ErrMalformed)
	}

	return weather.Report{
		WeatherTemperature: temp.Float() - kelvinOffset,
		WeatherRainfall:    gjson.GetBytes(body, "rain.1h").Float(),
		Wind:               wind.Get("speed").Float(),
		Timestamp:          now,
	}, nil
}
