// Package weather provides current outdoor conditions for the decision
// pipeline. Callers always get a usable Snapshot: when the live provider is
// unreachable the fallback provider substitutes deterministic synthetic
// values tagged Synthetic=true instead of returning an error.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"ecobox.dev/plantcare-engine/pkg/common"
)

// Snapshot is one observation of outdoor conditions.
type Snapshot struct {
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Condition   string    `json:"condition"`
	Synthetic   bool      `json:"synthetic"`
	ObservedAt  time.Time `json:"observed_at"`
}

type Provider interface {
	Current(ctx context.Context, location string) (Snapshot, error)
}

const (
	openWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	requestTimeout     = 5 * time.Second
)

type owmResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// OpenWeatherClient fetches live conditions. Requests run through a circuit
// breaker so a flapping upstream does not add a 5s stall to every tick.
type OpenWeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func NewOpenWeatherClient(apiKey string) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:     apiKey,
		baseURL:    openWeatherBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openweather",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

func (c *OpenWeatherClient) Current(ctx context.Context, location string) (Snapshot, error) {
	if c.apiKey == "" {
		return Snapshot{}, fmt.Errorf("missing weather api key")
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, location)
	})
	if err != nil {
		return Snapshot{}, err
	}
	return result.(Snapshot), nil
}

func (c *OpenWeatherClient) fetch(ctx context.Context, location string) (Snapshot, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Snapshot{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Snapshot{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return Snapshot{}, fmt.Errorf("openweather status %d: %s", resp.StatusCode, string(b))
	}

	var out owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Temperature: out.Main.Temp,
		Humidity:    out.Main.Humidity,
		ObservedAt:  time.Now().UTC(),
	}
	if len(out.Weather) > 0 {
		snap.Condition = out.Weather[0].Description
	}
	return snap, nil
}

// FallbackProvider wraps a live provider and substitutes synthetic data on
// any failure. Current never returns an error.
type FallbackProvider struct {
	live      Provider
	synthetic *SyntheticGenerator
}

func NewFallbackProvider(live Provider) *FallbackProvider {
	return &FallbackProvider{
		live:      live,
		synthetic: NewSyntheticGenerator(),
	}
}

func (f *FallbackProvider) Current(ctx context.Context, location string) (Snapshot, error) {
	logger := common.GetLoggerWith(common.LoggerNameWeather)

	if f.live != nil {
		snap, err := f.live.Current(ctx, location)
		if err == nil {
			return snap, nil
		}
		logger.Warn("Live weather unavailable, using synthetic data", zap.Error(err))
	}

	return f.synthetic.At(time.Now()), nil
}
