package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"skycast/internal/models"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Sentinel errors for use with errors.Is.
var (
	ErrAuth        = errors.New("weather API rejected the key")
	ErrRateLimited = errors.New("weather API rate limit exceeded")
	ErrUpstream    = errors.New("weather API unavailable")
	ErrNetwork     = errors.New("weather request failed")
	ErrParse       = errors.New("unexpected weather response")
)

// Client fetches current conditions from the OpenWeatherMap API.
type Client struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: defaultBaseURL,
	}
}

// Fetch retrieves current conditions for the given coordinates. Metric
// units are requested explicitly on every call so the account default never
// changes what gets rendered. A failed fetch is terminal; no retries.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (*models.WeatherReading, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', 4, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', 4, 64))
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrAuth
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}

	var result struct {
		Name string `json:"name"`
		Main struct {
			Temp    float64 `json:"temp"`
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			ID          int    `json:"id"`
			Description string `json:"description"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if len(result.Weather) == 0 {
		return nil, fmt.Errorf("%w: no weather condition in response", ErrParse)
	}

	return &models.WeatherReading{
		Temperature:   result.Main.Temp,
		TempMin:       result.Main.TempMin,
		TempMax:       result.Main.TempMax,
		WindSpeed:     result.Wind.Speed,
		ConditionCode: result.Weather[0].ID,
		Description:   result.Weather[0].Description,
		Label:         result.Name,
	}, nil
}
