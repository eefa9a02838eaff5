// Package slots builds the per-day slot grid of each service and flags the
// slots already taken. Every function here is pure: the same inputs always
// produce the same output and nothing is cached across dates.
package slots

import (
	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/pkg/types"
)

// Calculate annotates the kind's grid with booked flags, preserving grid order
func Calculate(kind domain.ServiceKind, booked []types.TimeString) ([]domain.Slot, error) {
	grid, err := GridFor(kind)
	if err != nil {
		return nil, err
	}
	return Annotate(grid, booked)
}

// Annotate is Calculate for an explicit grid
func Annotate(grid GridSpec, booked []types.TimeString) ([]domain.Slot, error) {
	candidates, err := grid.Generate()
	if err != nil {
		return nil, err
	}

	// Сравниваем минуты от полуночи, а не строки: "8:00" и "08:00" совпадают
	taken := make(map[int]struct{}, len(booked))
	for _, hour := range booked {
		if hour.IsZero() {
			continue
		}
		taken[hour.Minutes()] = struct{}{}
	}

	result := make([]domain.Slot, len(candidates))
	for i, candidate := range candidates {
		_, isBooked := taken[candidate.Minutes()]
		result[i] = domain.Slot{
			Time:   candidate,
			Booked: isBooked,
		}
	}

	return result, nil
}

// ParseBookedHours normalises raw hour strings from the gateway.
// Entries that cannot be parsed are returned separately so the caller can log them;
// they never mark a slot as booked or free.
func ParseBookedHours(raw []string) (hours []types.TimeString, rejected []string) {
	hours = make([]types.TimeString, 0, len(raw))
	for _, s := range raw {
		hour, err := types.NewTimeStringFromString(s)
		if err != nil {
			rejected = append(rejected, s)
			continue
		}
		hours = append(hours, hour)
	}
	return hours, rejected
}

// Contains reports whether hour belongs to the kind's grid
func Contains(kind domain.ServiceKind, hour types.TimeString) bool {
	grid, err := GridFor(kind)
	if err != nil {
		return false
	}
	return grid.Contains(hour)
}
