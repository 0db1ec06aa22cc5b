package openweather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const currentConditions = `{
	"name": "Schenectady",
	"main": {"temp": 19.29, "temp_min": 20.21, "temp_max": 0, "humidity": 62},
	"wind": {"speed": 17.27, "deg": 210},
	"weather": [{"id": 800, "main": "Clear", "description": "clear sky"}]
}`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("units"); got != "metric" {
			t.Errorf("units query = %q, want %q", got, "metric")
		}
		if got := q.Get("lat"); got != "42.8142" {
			t.Errorf("lat query = %q, want %q", got, "42.8142")
		}
		if got := q.Get("lon"); got != "-73.9396" {
			t.Errorf("lon query = %q, want %q", got, "-73.9396")
		}
		if got := q.Get("appid"); got != "key" {
			t.Errorf("appid query = %q, want %q", got, "key")
		}
		fmt.Fprint(w, currentConditions)
	}))
	defer srv.Close()

	client := NewClient("key")
	client.baseURL = srv.URL

	reading, err := client.Fetch(context.Background(), 42.8142, -73.9396)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if reading.Temperature != 19.29 {
		t.Errorf("Temperature = %v, want 19.29", reading.Temperature)
	}
	if reading.TempMin != 20.21 {
		t.Errorf("TempMin = %v, want 20.21", reading.TempMin)
	}
	if reading.TempMax != 0 {
		t.Errorf("TempMax = %v, want 0", reading.TempMax)
	}
	if reading.WindSpeed != 17.27 {
		t.Errorf("WindSpeed = %v, want 17.27", reading.WindSpeed)
	}
	if reading.ConditionCode != 800 {
		t.Errorf("ConditionCode = %d, want 800", reading.ConditionCode)
	}
	if reading.Description != "clear sky" {
		t.Errorf("Description = %q, want %q", reading.Description, "clear sky")
	}
	if reading.Label != "Schenectady" {
		t.Errorf("Label = %q, want %q", reading.Label, "Schenectady")
	}
}

func TestFetchErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrAuth},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"server error", http.StatusInternalServerError, ErrUpstream},
		{"bad gateway", http.StatusBadGateway, ErrUpstream},
		{"unexpected status", http.StatusNotFound, ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := NewClient("key")
			client.baseURL = srv.URL

			_, err := client.Fetch(context.Background(), 0, 0)
			if !errors.Is(err, tt.want) {
				t.Errorf("Fetch error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFetchParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>oops</html>"},
		{"no condition", `{"name":"Nowhere","main":{"temp":1},"wind":{"speed":2},"weather":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			client := NewClient("key")
			client.baseURL = srv.URL

			_, err := client.Fetch(context.Background(), 0, 0)
			if !errors.Is(err, ErrParse) {
				t.Errorf("Fetch error = %v, want ErrParse", err)
			}
		})
	}
}

func TestFetchTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient("key")
	client.baseURL = srv.URL

	_, err := client.Fetch(context.Background(), 0, 0)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("Fetch error = %v, want ErrNetwork", err)
	}
}
