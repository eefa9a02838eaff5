package domain

import (
	"time"

	"github.com/m04kA/SMC-WashBooking/pkg/types"
)

// Slot is one candidate time of the day's grid with its conflict flag
type Slot struct {
	Time   types.TimeString
	Booked bool
}

// AvailabilityView is the annotated slot grid for one date and service kind
type AvailabilityView struct {
	Date  time.Time
	Kind  ServiceKind
	Slots []Slot
}

// Find returns the slot at the given time, if it belongs to the grid
func (v *AvailabilityView) Find(hour types.TimeString) (Slot, bool) {
	for _, s := range v.Slots {
		if s.Time.Equal(hour) {
			return s, true
		}
	}
	return Slot{}, false
}

// FreeCount returns the number of slots not yet booked
func (v *AvailabilityView) FreeCount() int {
	free := 0
	for _, s := range v.Slots {
		if !s.Booked {
			free++
		}
	}
	return free
}
