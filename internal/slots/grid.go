package slots

import (
	"fmt"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/pkg/types"
)

// GridSpec описывает сетку слотов на один день.
// Если Fixed не пуст, сетка состоит ровно из этих слотов, остальные поля игнорируются
type GridSpec struct {
	Start           types.TimeString // Начало рабочего дня (включительно)
	End             types.TimeString // Конец рабочего дня (не включительно)
	IntervalMinutes int              // Шаг сетки
	Fixed           []types.TimeString
}

var (
	dayStart = types.MustTimeString("8:00")
	dayEnd   = types.MustTimeString("21:00")
)

var grids = map[domain.ServiceKind]GridSpec{
	domain.KindLavage:    {Start: dayStart, End: dayEnd, IntervalMinutes: 30},
	domain.KindTolerie:   {Start: dayStart, End: dayEnd, IntervalMinutes: 60},
	domain.KindPolissage: {Start: dayStart, End: dayEnd, IntervalMinutes: 60},
	// Детейлинг длится около 6.5 часов, поэтому в день только два сеанса
	domain.KindDetailing: {Fixed: []types.TimeString{
		types.MustTimeString("8:00"),
		types.MustTimeString("14:30"),
	}},
}

// GridFor returns the slot grid of a service kind
func GridFor(kind domain.ServiceKind) (GridSpec, error) {
	grid, ok := grids[kind]
	if !ok {
		return GridSpec{}, fmt.Errorf("%w: %q", ErrUnknownService, kind)
	}
	return grid, nil
}

// Generate returns the ordered candidate times of the grid
func (g GridSpec) Generate() ([]types.TimeString, error) {
	if len(g.Fixed) > 0 {
		out := make([]types.TimeString, len(g.Fixed))
		copy(out, g.Fixed)
		return out, nil
	}

	if g.IntervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %d", ErrInvalidGrid, g.IntervalMinutes)
	}
	if g.Start.IsZero() || g.End.IsZero() {
		return nil, fmt.Errorf("%w: start and end are required", ErrInvalidGrid)
	}

	result := make([]types.TimeString, 0)
	current := g.Start

	for current.IsBefore(g.End) {
		result = append(result, current)

		next, err := current.AddMinutes(g.IntervalMinutes)
		if err != nil {
			// Сетка дошла до конца суток
			break
		}
		current = next
	}

	return result, nil
}

// Contains reports whether hour is one of the grid's candidate times
func (g GridSpec) Contains(hour types.TimeString) bool {
	if hour.IsZero() {
		return false
	}

	if len(g.Fixed) > 0 {
		for _, t := range g.Fixed {
			if t.Equal(hour) {
				return true
			}
		}
		return false
	}

	if g.IntervalMinutes <= 0 || hour.IsBefore(g.Start) || !hour.IsBefore(g.End) {
		return false
	}
	return (hour.Minutes()-g.Start.Minutes())%g.IntervalMinutes == 0
}
