package booking

import (
	"time"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/pkg/types"
)

// State of the booking workflow
type State int

const (
	StateIdle State = iota
	StateAwaitingSlotData
	StateReady
	StateSubmitting
	StateSubmitted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingSlotData:
		return "awaiting_slot_data"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Сообщения для пользователя
const (
	MsgLoadFailed   = "Erreur lors du chargement des heures disponibles."
	MsgSubmitFailed = "Erreur lors de la réservation."
)

// Form holds the user-entered fields of a booking form.
// Fields that do not apply to the service kind are ignored.
type Form struct {
	Hour        types.TimeString
	SubOption   domain.SubOption   // lavage: rapide/express, polissage: complete/nb_pieces
	VehicleType domain.VehicleType // lavage only
	Vehicle     domain.VehicleProfile
	Moto        domain.MotoProfile
	Color       string // tôlerie
	PieceCount  int    // polissage nb_pieces
}

// Snapshot is a consistent copy of the controller state for rendering
type Snapshot struct {
	Kind      domain.ServiceKind
	State     State
	Date      time.Time
	HasDate   bool
	Slots     []domain.Slot
	Form      Form
	Price     *float64
	PriceErr  error
	Message   string
	CanSubmit bool
}
