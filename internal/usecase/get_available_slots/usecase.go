package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/slots"
)

type UseCase struct {
	reservationRepo ReservationRepository
	logger          Logger
}

func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute возвращает сетку слотов услуги на дату с пометкой занятых
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown service kind %q", ErrInvalidInput, req.Kind)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, time.UTC)

	booked, err := uc.reservationRepo.BookedHours(ctx, req.Kind, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked hours for %s on %s: %v",
			req.Kind, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get booked hours: %v", ErrInternal, err)
	}

	annotated, err := slots.Calculate(req.Kind, booked)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build grid for %s: %v", req.Kind, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:  date,
		Kind:  req.Kind,
		Slots: annotated,
	}

	uc.logger.Info("GetAvailableSlots: kind=%s, date=%s, free=%d/%d",
		req.Kind, date.Format(domain.DateFormat), resp.FreeCount(), len(annotated))

	return resp, nil
}
