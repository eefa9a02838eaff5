package get_available_slots

import (
	"github.com/m04kA/SMC-WashBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-WashBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date    string         `json:"date"`
	Service string         `json:"service"`
	Slots   []SlotResponse `json:"slots"`
}

// SlotResponse HTTP response model для слота
type SlotResponse struct {
	Time   string `json:"time"` // "8:00"
	Booked bool   `json:"booked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			Time:   s.Time.String(),
			Booked: s.Booked,
		}
	}

	return &AvailableSlotsResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		Service: string(resp.Kind),
		Slots:   slots,
	}
}
