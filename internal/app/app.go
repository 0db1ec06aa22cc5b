package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"skycast/internal/art"
	"skycast/internal/config"
	"skycast/internal/geocode"
	"skycast/internal/models"
	"skycast/internal/openweather"
)

// Exit codes, kept distinct so scripts can tell user error from transient
// failure.
const (
	ExitOK            = 0
	ExitFailure       = 1 // network/API failure
	ExitInvalidInput  = 2 // malformed zip or arguments
	ExitNotConfigured = 3 // missing or corrupt config
)

// ErrInvalidInput marks user-supplied values rejected before any network
// call.
var ErrInvalidInput = errors.New("invalid input")

// Each remote call gets its own deadline so a stalled API surfaces as an
// error instead of hanging the terminal.
const requestTimeout = 10 * time.Second

type locationResolver interface {
	Resolve(ctx context.Context, zip, country string) (*geocode.Location, error)
}

type weatherFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (*models.WeatherReading, error)
}

// Options selects the invocation mode. Setup and Zip are mutually
// exclusive; the CLI layer rejects the combination before Run is called.
type Options struct {
	Setup   bool
	Zip     string
	Country string
	JSON    bool
}

// App sequences the pipeline: config, resolution, fetch, render.
type App struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	newResolver func(apiKey string) locationResolver
	newFetcher  func(apiKey string) weatherFetcher
}

func New() *App {
	return &App{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
		newResolver: func(apiKey string) locationResolver {
			return geocode.NewResolver(apiKey)
		},
		newFetcher: func(apiKey string) weatherFetcher {
			return openweather.NewClient(apiKey)
		},
	}
}

func (a *App) Run(ctx context.Context, opts Options) error {
	switch {
	case opts.Setup:
		return a.runSetup(ctx)
	case opts.Zip != "":
		return a.runAdHoc(ctx, opts.Zip, opts.Country, opts.JSON)
	default:
		return a.runDefault(ctx, opts.JSON)
	}
}

// runDefault shows weather for the saved location.
func (a *App) runDefault(ctx context.Context, asJSON bool) error {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissing) {
			return fmt.Errorf("%w; run 'skycast --setup' to configure a default location", err)
		}
		return err
	}

	reading, err := a.fetch(ctx, cfg.APIKey, cfg.Latitude, cfg.Longitude)
	if err != nil {
		return err
	}
	if reading.Label == "" {
		reading.Label = cfg.LocationLabel
	}

	return a.display(reading, asJSON)
}

// runAdHoc shows weather for a zip given on the command line. Only the
// saved credential is used; the saved coordinates are never read.
func (a *App) runAdHoc(ctx context.Context, zip, country string, asJSON bool) error {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissing) {
			return fmt.Errorf("%w; run 'skycast --setup' to save an API key first", err)
		}
		return err
	}

	rctx, cancel := context.WithTimeout(ctx, requestTimeout)
	loc, err := a.newResolver(cfg.APIKey).Resolve(rctx, zip, country)
	cancel()
	if err != nil {
		return err
	}

	reading, err := a.fetch(ctx, cfg.APIKey, loc.Latitude, loc.Longitude)
	if err != nil {
		return err
	}
	if reading.Label == "" {
		reading.Label = loc.Label
	}

	return a.display(reading, asJSON)
}

func (a *App) fetch(ctx context.Context, apiKey string, lat, lon float64) (*models.WeatherReading, error) {
	fctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	return a.newFetcher(apiKey).Fetch(fctx, lat, lon)
}

func (a *App) display(reading *models.WeatherReading, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(reading, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode reading: %w", err)
		}
		fmt.Fprintln(a.Out, string(data))
		return nil
	}

	fmt.Fprint(a.Out, art.Render(*reading))
	return nil
}

// ExitCode maps an error from Run onto the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, config.ErrMissing), errors.Is(err, config.ErrCorrupt):
		return ExitNotConfigured
	case errors.Is(err, geocode.ErrInvalidZip), errors.Is(err, geocode.ErrNotFound),
		errors.Is(err, ErrInvalidInput):
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}
