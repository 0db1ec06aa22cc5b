package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"skycast/internal/config"
	"skycast/internal/geocode"
)

// Setup retries the zip prompt on bad syntax a few times before giving up.
const maxZipAttempts = 3

// runSetup collects the API key and default location interactively, then
// persists the config. Nothing is written until every step has succeeded,
// so an aborted setup leaves any existing config untouched. No weather
// fetch happens in this mode.
func (a *App) runSetup(ctx context.Context) error {
	reader := bufio.NewReader(a.In)

	fmt.Fprintln(a.Out, "Setting up skycast. An OpenWeatherMap API key is required.")

	apiKey, err := a.prompt(ctx, reader, "API key: ")
	if err != nil {
		return err
	}
	if apiKey == "" {
		return fmt.Errorf("%w: API key must not be empty", ErrInvalidInput)
	}

	resolver := a.newResolver(apiKey)

	var loc *geocode.Location
	for attempt := 1; ; attempt++ {
		zip, err := a.prompt(ctx, reader, "Zip code: ")
		if err != nil {
			return err
		}
		country, err := a.prompt(ctx, reader, "Country code [US]: ")
		if err != nil {
			return err
		}

		rctx, cancel := context.WithTimeout(ctx, requestTimeout)
		loc, err = resolver.Resolve(rctx, zip, country)
		cancel()
		if errors.Is(err, geocode.ErrInvalidZip) && attempt < maxZipAttempts {
			fmt.Fprintf(a.Err, "%q does not look like a postal code, try again.\n", zip)
			continue
		}
		if err != nil {
			return err
		}
		break
	}

	cfg := &config.Config{
		APIKey:        apiKey,
		Latitude:      loc.Latitude,
		Longitude:     loc.Longitude,
		LocationLabel: loc.Label,
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Saved default location %s (%.4f, %.4f).\n",
		loc.Label, loc.Latitude, loc.Longitude)
	return nil
}

// prompt reads one trimmed line, bailing out if the context was cancelled
// while waiting.
func (a *App) prompt(ctx context.Context, reader *bufio.Reader, label string) (string, error) {
	fmt.Fprint(a.Out, label)

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("setup aborted: %w", err)
	}
	if ctx.Err() != nil {
		return "", fmt.Errorf("setup aborted: %w", ctx.Err())
	}
	return strings.TrimSpace(line), nil
}
