package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	Kind domain.ServiceKind
	Date time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа с размеченной сеткой слотов
type Response struct {
	Date  time.Time
	Kind  domain.ServiceKind
	Slots []domain.Slot // В порядке сетки, занятые слоты помечены Booked
}

// FreeCount возвращает количество свободных слотов
func (r *Response) FreeCount() int {
	view := domain.AvailabilityView{Slots: r.Slots}
	return view.FreeCount()
}
