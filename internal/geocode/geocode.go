package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/geo/1.0/zip"

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidZip   = errors.New("invalid zip code")
	ErrNotFound     = errors.New("location not found")
	ErrUnauthorized = errors.New("geocoding API rejected the key")
	ErrRateLimited  = errors.New("geocoding rate limit exceeded")
	ErrNetwork      = errors.New("geocoding request failed")
)

// Postal codes worldwide are 3-10 letters/digits, optionally with spaces or
// hyphens. Checked before any network call.
var zipPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 -]{2,9}$`)

// Location is a resolved place.
type Location struct {
	Latitude  float64
	Longitude float64
	Label     string
}

// Resolver converts postal codes into coordinates via the OpenWeatherMap
// geocoding API.
type Resolver struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewResolver(apiKey string) *Resolver {
	return &Resolver{
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: defaultBaseURL,
	}
}

// Resolve looks up the coordinates for a zip code. Country defaults to US.
// The zip endpoint returns at most one match, and that ordering is
// authoritative.
func (r *Resolver) Resolve(ctx context.Context, zip, country string) (*Location, error) {
	if !zipPattern.MatchString(zip) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidZip, zip)
	}
	if country == "" {
		country = "US"
	}

	query := url.Values{}
	query.Set("zip", fmt.Sprintf("%s,%s", zip, country))
	query.Set("appid", r.apiKey)

	reqURL := fmt.Sprintf("%s?%s", r.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocoding request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s,%s", ErrNotFound, zip, country)
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		return nil, fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}

	var result struct {
		Name string  `json:"name"`
		Lat  float64 `json:"lat"`
		Lon  float64 `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	return &Location{
		Latitude:  result.Lat,
		Longitude: result.Lon,
		Label:     result.Name,
	}, nil
}
