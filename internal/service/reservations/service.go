package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-WashBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-WashBooking/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// ListByDate возвращает бронирования услуги на дату без персональных данных
func (s *Service) ListByDate(ctx context.Context, kind domain.ServiceKind, date time.Time) ([]models.ReservationResponse, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	s.logger.Info("ListByDate: fetching %s reservations for %s", kind, day.Format(domain.DateFormat))

	list, err := s.reservationRepo.List(ctx, domain.ReservationFilter{
		Kind:      kind,
		StartDate: &day,
		EndDate:   &day,
	})
	if err != nil {
		s.logger.Error("ListByDate: repository error for %s: %v", kind, err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(list, models.FromDomainReservationPublic), nil
}

// ListByUser возвращает историю бронирований пользователя.
// Доступно владельцу и администратору.
func (s *Service) ListByUser(ctx context.Context, kind domain.ServiceKind, email string, actor models.Actor) ([]models.ReservationResponse, error) {
	s.logger.Info("ListByUser: fetching %s reservations of %s for %s", kind, email, actor.Email)

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if !actor.IsAdmin && actor.Email != email {
		s.logger.Warn("ListByUser: access denied for %s to reservations of %s", actor.Email, email)
		return nil, ErrAccessDenied
	}

	list, err := s.reservationRepo.List(ctx, domain.ReservationFilter{
		Kind:      kind,
		UserEmail: &email,
	})
	if err != nil {
		s.logger.Error("ListByUser: repository error for %s: %v", email, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByUser: successfully fetched %d reservations for %s", len(list), email)
	return models.FromDomainReservationList(list, models.FromDomainReservation), nil
}

// ListAll возвращает календарь бронирований услуги за период (админ)
func (s *Service) ListAll(ctx context.Context, req *models.ListReservationsRequest) ([]models.ReservationResponse, error) {
	logMsg := fmt.Sprintf("ListAll: fetching %s reservations", req.Kind)
	if req.From != nil {
		logMsg += ", from=" + req.From.Format(domain.DateFormat)
	}
	if req.To != nil {
		logMsg += ", to=" + req.To.Format(domain.DateFormat)
	}
	s.logger.Info(logMsg)

	if req.From != nil && req.To != nil && req.From.After(*req.To) {
		s.logger.Warn("ListAll: invalid period %s > %s", req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))
		return nil, ErrInvalidTimeRange
	}

	list, err := s.reservationRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ListAll: repository error for %s: %v", req.Kind, err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: successfully fetched %d reservations", len(list))
	return models.FromDomainReservationList(list, models.FromDomainReservation), nil
}

// Delete удаляет бронирование. Доступно владельцу и администратору.
func (s *Service) Delete(ctx context.Context, kind domain.ServiceKind, id int64, actor models.Actor) error {
	s.logger.Info("Delete: %s reservation id=%d requested by %s", kind, id, actor.Email)

	if _, err := s.getOwnKind(ctx, "Delete", kind, id, actor); err != nil {
		return err
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// SetVerified отмечает бронирование как проверенное (админ)
func (s *Service) SetVerified(ctx context.Context, kind domain.ServiceKind, id int64, verified bool) (*models.ReservationResponse, error) {
	s.logger.Info("SetVerified: %s reservation id=%d, verified=%t", kind, id, verified)

	res, err := s.getOwnKind(ctx, "SetVerified", kind, id, models.Actor{IsAdmin: true})
	if err != nil {
		return nil, err
	}

	if err := s.reservationRepo.SetVerified(ctx, id, verified); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("SetVerified: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetVerified - repository error: %v", ErrInternal, err)
	}

	res.Verified = verified
	return models.FromDomainReservation(res), nil
}

// Вспомогательные методы

// getOwnKind загружает бронирование и проверяет вид услуги и права доступа.
// Бронирование другой коллекции считается не найденным.
func (s *Service) getOwnKind(ctx context.Context, op string, kind domain.ServiceKind, id int64, actor models.Actor) (*domain.Reservation, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if res.Kind != kind {
		s.logger.Warn("%s: reservation id=%d belongs to %s, not %s", op, id, res.Kind, kind)
		return nil, ErrReservationNotFound
	}

	if !actor.IsAdmin && !res.IsOwnedBy(actor.Email) {
		s.logger.Warn("%s: access denied for %s to reservation id=%d", op, actor.Email, id)
		return nil, ErrAccessDenied
	}

	return res, nil
}
