package opensensemap

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/AzielCF/az-citydata/domains/sensor"
	"github.com/AzielCF/az-citydata/infrastructure/upstream"
)

const (
	airQualityTitle  = "PM2.5"
	temperatureTitle = "Temperature"
)

type Client struct {
	http    *upstream.Client
	baseURL string
}

func NewClient(http *upstream.Client, baseURL string) *Client {
	return &Client{http: http, baseURL: strings.TrimRight(baseURL, "/")}
}

// BoundingBox renders "west,south,east,north" around c.
func BoundingBox(c sensor.Coordinates) string {
	d := sensor.BoundingBoxDelta
	parts := []float64{c.Lon - d, c.Lat - d, c.Lon + d, c.Lat + d}
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strconv.FormatFloat(p, 'f', -1, 64)
	}
	return strings.Join(out, ",")
}

func (c *Client) boxesURL(coords sensor.Coordinates) string {
	return fmt.Sprintf("%s/boxes?bbox=%s", c.baseURL, BoundingBox(coords))
}

// NearestReading queries the boxes inside the bounding box around coords.
func (c *Client) NearestReading(ctx context.Context, coords sensor.Coordinates) (sensor.Reading, error) {
	resp, err := c.http.Get(ctx, c.boxesURL(coords))
	if err != nil {
		return sensor.Reading{}, err
	}
	return ParseBoxes(resp.Body, time.Now())
}

// ParseBoxes reads the first box only. Each measurement comes from the first
// sensor whose title contains the wanted phenomenon; missing ones read as 0.
// An empty box list is a valid answer with zero readings.
func ParseBoxes(body []byte, now time.Time) (sensor.Reading, error) {
	if !gjson.ValidBytes(body) {
		return sensor.Reading{}, fmt.Errorf("%w: boxes body is not json", upstream.ErrMalformed)
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return sensor.Reading{}, fmt.Errorf("%w: boxes body is not an array", upstream.ErrMalformed)
	}

	sensors := root.Get("0.sensors").Array()
	return sensor.Reading{
		SensorAirQuality:  lastValue(sensors, airQualityTitle),
		SensorTemperature: lastValue(sensors, temperatureTitle),
		Timestamp:         now,
	}, nil
}

// lastValue accepts numbers and numeric strings, as the API reports both.
func lastValue(sensors []gjson.Result, title string) float64 {
	for _, s := range sensors {
		if strings.Contains(s.Get("title").String(), title) {
			return s.Get("lastMeasurement.value").Float()
		}
	}
	return 0
}
