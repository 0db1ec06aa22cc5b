package art

import (
	"fmt"
	"strings"

	"skycast/internal/models"
)

// Category classifies a weather condition for art selection.
type Category int

const (
	Unknown Category = iota
	Thunderstorm
	Rain
	Snow
	Mist
	Clear
	Clouds
)

func (c Category) String() string {
	switch c {
	case Thunderstorm:
		return "Thunderstorm"
	case Rain:
		return "Rain"
	case Snow:
		return "Snow"
	case Mist:
		return "Mist"
	case Clear:
		return "Clear"
	case Clouds:
		return "Clouds"
	default:
		return "Unknown"
	}
}

// codeRange maps a span of OpenWeatherMap condition codes to a category.
type codeRange struct {
	lo, hi int
	cat    Category
}

// Checked in order; the first matching range wins. Drizzle (3xx) renders as
// rain.
var codeRanges = []codeRange{
	{200, 299, Thunderstorm},
	{300, 399, Rain},
	{500, 599, Rain},
	{600, 699, Snow},
	{700, 799, Mist},
	{800, 800, Clear},
	{801, 804, Clouds},
}

// Categorize maps a condition code to its category. Codes outside every
// known range map to Unknown, never an error.
func Categorize(code int) Category {
	for _, r := range codeRanges {
		if code >= r.lo && code <= r.hi {
			return r.cat
		}
	}
	return Unknown
}

// Render produces the display block: art on the left, labeled readings on
// the right separated by a vertical bar, location label beneath the art.
// Values use two decimal places. Pure text, never fails.
func Render(r models.WeatherReading) string {
	lines := strings.Split(templates[Categorize(r.ConditionCode)], "\n")

	readings := []string{
		fmt.Sprintf("Temperature: %.2f", r.Temperature),
		fmt.Sprintf("Min: %.2f", r.TempMin),
		fmt.Sprintf("Max: %.2f", r.TempMax),
		fmt.Sprintf("Wind Speed: %.2f", r.WindSpeed),
	}
	if r.Description != "" {
		readings = append(readings, r.Description)
	}

	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}

	rows := len(lines)
	if len(readings) > rows {
		rows = len(readings)
	}

	var b strings.Builder
	for i := 0; i < rows; i++ {
		var left, right string
		if i < len(lines) {
			left = lines[i]
		}
		if i < len(readings) {
			right = readings[i]
		}
		row := fmt.Sprintf("%-*s | %s", width, left, right)
		b.WriteString(strings.TrimRight(row, " |"))
		b.WriteByte('\n')
	}
	if r.Label != "" {
		b.WriteString(r.Label)
		b.WriteByte('\n')
	}
	return b.String()
}
