package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveInvalidZipSkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	resolver := NewResolver("key")
	resolver.baseURL = srv.URL

	for _, zip := range []string{"", "ab", "zip!", "    12345", "12345678901"} {
		_, err := resolver.Resolve(context.Background(), zip, "")
		if !errors.Is(err, ErrInvalidZip) {
			t.Errorf("Resolve(%q) error = %v, want ErrInvalidZip", zip, err)
		}
	}

	if calls != 0 {
		t.Errorf("expected zero geocoding requests, got %d", calls)
	}
}

func TestResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("zip"); got != "12345,US" {
			t.Errorf("zip query = %q, want %q", got, "12345,US")
		}
		if got := r.URL.Query().Get("appid"); got != "key" {
			t.Errorf("appid query = %q, want %q", got, "key")
		}
		fmt.Fprint(w, `{"name":"Schenectady","lat":42.8142,"lon":-73.9396,"country":"US"}`)
	}))
	defer srv.Close()

	resolver := NewResolver("key")
	resolver.baseURL = srv.URL

	// Country defaults to US when empty.
	loc, err := resolver.Resolve(context.Background(), "12345", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if loc.Latitude != 42.8142 || loc.Longitude != -73.9396 {
		t.Errorf("coordinates = (%v, %v), want (42.8142, -73.9396)", loc.Latitude, loc.Longitude)
	}
	if loc.Label != "Schenectady" {
		t.Errorf("label = %q, want %q", loc.Label, "Schenectady")
	}
}

func TestResolveErrorStatuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, ErrNotFound},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusInternalServerError, ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			resolver := NewResolver("key")
			resolver.baseURL = srv.URL

			_, err := resolver.Resolve(context.Background(), "12345", "US")
			if !errors.Is(err, tt.want) {
				t.Errorf("Resolve error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResolveTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	resolver := NewResolver("key")
	resolver.baseURL = srv.URL

	_, err := resolver.Resolve(context.Background(), "12345", "US")
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("Resolve error = %v, want ErrNetwork", err)
	}
}
