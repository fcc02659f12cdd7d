package planner

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tripplanner/tripplanner/pkg/trip"
	"github.com/tripplanner/tripplanner/pkg/util"
	"golang.org/x/exp/slices"
)

var ErrMalformedInput = errors.New("malformed input")

func ParseDate(field string, value string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q is not a YYYY-MM-DD date", ErrMalformedInput, field, value)
	}

	return date, nil
}

// ParseModes accepts repeated values as well as comma separated lists
func ParseModes(values []string) ([]trip.TransportMode, error) {
	var modes []trip.TransportMode

	for _, value := range values {
		for _, item := range util.SplitList(value) {
			mode, err := trip.ParseTransportMode(item)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
			}

			if !slices.Contains(modes, mode) {
				modes = append(modes, mode)
			}
		}
	}

	return modes, nil
}

// ParseBudget returns nil for an empty value, meaning no limit
func ParseBudget(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	budget, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(budget) || math.IsInf(budget, 0) || budget < 0 {
		return nil, fmt.Errorf("%w: budget %q is not a non-negative number", ErrMalformedInput, value)
	}

	return &budget, nil
}

func ParseMinutes(field string, value string, fallback int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}

	minutes, err := strconv.Atoi(value)
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("%w: %s %q is not a whole number of minutes", ErrMalformedInput, field, value)
	}

	return minutes, nil
}
