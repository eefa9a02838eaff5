package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-WashBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-WashBooking/internal/pricing"
	"github.com/m04kA/SMC-WashBooking/pkg/ptr"
)

type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute создает бронирование слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: kind=%s, user=%s, date=%s, hour=%s",
		req.Kind, req.UserEmail, req.Date.Format(domain.DateFormat), req.Hour)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не может быть в прошлом
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Пересчитываем цену, цена клиента не используется
	price, err := pricing.Resolve(quoteFor(req))
	if err != nil {
		uc.logger.Warn("CreateReservation: failed to resolve price: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPriceUnavailable, err)
	}
	if pricing.IsPriced(req.Kind) && price == nil {
		return nil, ErrPriceUnavailable
	}

	adjusted := req.ClientPrice != nil && !samePrice(req.ClientPrice, price)
	if adjusted {
		uc.logger.Warn("CreateReservation: client price %.2f replaced by %.2f",
			*req.ClientPrice, ptr.Value(price))
	}

	draft := buildReservation(req, price)

	var result *domain.Reservation

	// 4. Проверка слота и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booked, err := uc.reservationRepo.BookedHours(txCtx, req.Kind, draft.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get booked hours: %v", err)
			return fmt.Errorf("%w: failed to get booked hours: %v", ErrInternal, err)
		}

		for _, hour := range booked {
			if hour.Equal(req.Hour) {
				return ErrSlotNotAvailable
			}
		}

		created, err := uc.reservationRepo.Create(txCtx, draft)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateReservation: slot %s %s is already booked for %s",
				draft.Date.Format(domain.DateFormat), req.Hour, req.Kind)
			uc.metrics.IncSlotConflict(string(req.Kind))
			return nil, err
		}
		if !errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateReservation: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.metrics.IncReservationCreated(string(req.Kind))
	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		Reservation:   result,
		PriceAdjusted: adjusted,
	}, nil
}

// buildReservation переносит в бронирование только поля, относящиеся к виду услуги
func buildReservation(req *Request, price *float64) *domain.Reservation {
	d := req.Date
	res := &domain.Reservation{
		Kind:      req.Kind,
		Date:      time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
		Hour:      req.Hour,
		Price:     price,
		UserEmail: req.UserEmail,
	}

	switch req.Kind {
	case domain.KindLavage:
		res.SubOption = req.SubOption
		res.VehicleType = req.VehicleType
		if res.VehicleType == "" {
			res.VehicleType = domain.VehicleCar
		}
		if res.VehicleType == domain.VehicleMoto {
			moto := *req.Moto
			res.Moto = &moto
		} else {
			vehicle := *req.Vehicle
			res.Vehicle = &vehicle
		}

	case domain.KindPolissage:
		res.SubOption = req.SubOption
		vehicle := *req.Vehicle
		res.Vehicle = &vehicle
		if req.SubOption == domain.PolishPerPieces {
			res.PieceCount = ptr.Ptr(ptr.Value(req.PieceCount))
		}

	case domain.KindTolerie:
		vehicle := *req.Vehicle
		res.Vehicle = &vehicle
		res.Color = ptr.Ptr(strings.TrimSpace(ptr.Value(req.Color)))

	case domain.KindDetailing:
		vehicle := *req.Vehicle
		res.Vehicle = &vehicle
	}

	return res
}
