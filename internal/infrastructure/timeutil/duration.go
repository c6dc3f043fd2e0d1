package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// isoDurationPattern matches the day/time subset of ISO 8601 durations used
// for itinerary lengths, e.g. "PT7H15M", "P1DT2H", "PT45M".
var isoDurationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// ParseISODuration converts an ISO 8601 duration into a time.Duration.
// Years, months and weeks are rejected since their length is calendar-dependent.
func ParseISODuration(s string) (time.Duration, error) {
	m := isoDurationPattern.FindStringSubmatch(s)
	if m == nil || s == "P" || s == "PT" {
		return 0, fmt.Errorf("invalid ISO 8601 duration %q", s)
	}

	units := []time.Duration{24 * time.Hour, time.Hour, time.Minute, time.Second}

	var total time.Duration
	for i, unit := range units {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0, fmt.Errorf("invalid ISO 8601 duration %q: %w", s, err)
		}
		total += time.Duration(n) * unit
	}
	return total, nil
}

// DurationMinutes is ParseISODuration truncated to whole minutes.
func DurationMinutes(s string) (int, error) {
	d, err := ParseISODuration(s)
	if err != nil {
		return 0, err
	}
	return int(d / time.Minute), nil
}
