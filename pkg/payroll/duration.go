package payroll

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedDuration is returned for duration strings that are not "H:MM".
var ErrMalformedDuration = errors.New("malformed duration")

// ParseDuration converts a stored "H:MM" duration into decimal hours.
// A trailing ":SS" part is accepted and ignored.
func ParseDuration(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%w: empty value", ErrMalformedDuration)
	}

	parts := strings.Split(value, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("%w: invalid hours in %q", ErrMalformedDuration, value)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: invalid minutes in %q", ErrMalformedDuration, value)
	}

	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return 0, fmt.Errorf("%w: invalid seconds in %q", ErrMalformedDuration, value)
		}
	}

	return float64(hours) + float64(minutes)/60, nil
}

// SumDurations adds up every parseable duration. Nil entries count as zero
// (session still open); malformed entries are skipped and reported to onSkip.
func SumDurations(values []*string, onSkip func(index int, value string, err error)) float64 {
	total := 0.0
	for i, v := range values {
		if v == nil {
			continue
		}
		hours, err := ParseDuration(*v)
		if err != nil {
			if onSkip != nil {
				onSkip(i, *v, err)
			}
			continue
		}
		total += hours
	}
	return total
}
