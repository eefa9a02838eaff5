package create_reservation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
	"github.com/m04kA/SMC-WashBooking/internal/pricing"
	"github.com/m04kA/SMC-WashBooking/internal/slots"
	"github.com/m04kA/SMC-WashBooking/pkg/ptr"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: unknown service kind %q", ErrInvalidInput, req.Kind)
	}

	if blank(req.UserEmail) || len(req.UserEmail) > domain.MaxEmailLength {
		return fmt.Errorf("%w: user email is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Hour.IsZero() {
		return fmt.Errorf("%w: hour is required", ErrInvalidInput)
	}

	if !slots.Contains(req.Kind, req.Hour) {
		return fmt.Errorf("%w: %s for %s", ErrInvalidTimeSlot, req.Hour, req.Kind)
	}

	if err := validateVehicle(req); err != nil {
		return err
	}

	if req.Kind == domain.KindTolerie {
		color := strings.TrimSpace(ptr.Value(req.Color))
		if color == "" {
			return ErrColorRequired
		}
		if tooLong(color, domain.MaxColorLength) {
			return fmt.Errorf("%w: color longer than %d characters", ErrInvalidInput, domain.MaxColorLength)
		}
	}

	if req.PieceCount != nil && (*req.PieceCount < 0 || *req.PieceCount > domain.MaxPieceCount) {
		return fmt.Errorf("%w: piece count must be between 1 and %d", ErrInvalidInput, domain.MaxPieceCount)
	}

	return nil
}

// validateVehicle проверяет описание машины или мотоцикла
func validateVehicle(req *Request) error {
	if req.Kind == domain.KindLavage && req.VehicleType == domain.VehicleMoto {
		m := req.Moto
		if m == nil || blank(m.Name) || m.SizeClass == "" {
			return fmt.Errorf("%w: moto name and size are required", ErrVehicleRequired)
		}
		if tooLong(m.Name, domain.MaxNameLength) {
			return fmt.Errorf("%w: moto name too long", ErrVehicleRequired)
		}
		return nil
	}

	if req.Kind == domain.KindLavage && req.VehicleType != "" && req.VehicleType != domain.VehicleCar {
		return fmt.Errorf("%w: vehicle type %q", ErrInvalidInput, req.VehicleType)
	}

	v := req.Vehicle
	switch {
	case v == nil:
		return fmt.Errorf("%w: vehicle is required", ErrVehicleRequired)
	case blank(v.Name), blank(v.Model), blank(v.Year), blank(v.Plate):
		return fmt.Errorf("%w: name, model, year and plate are required", ErrVehicleRequired)
	case v.SizeClass == "":
		return fmt.Errorf("%w: vehicle size is required", ErrVehicleRequired)
	case tooLong(v.Name, domain.MaxNameLength) || tooLong(v.Model, domain.MaxNameLength):
		return fmt.Errorf("%w: vehicle name or model too long", ErrVehicleRequired)
	case tooLong(v.Year, domain.MaxYearLength):
		return fmt.Errorf("%w: vehicle year longer than %d characters", ErrVehicleRequired, domain.MaxYearLength)
	case tooLong(v.Plate, domain.MaxPlateLength):
		return fmt.Errorf("%w: plate longer than %d characters", ErrVehicleRequired, domain.MaxPlateLength)
	}
	return nil
}

// tooLong считает символы, как VARCHAR(n) в Postgres
func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

// quoteFor собирает параметры расчета цены из запроса
func quoteFor(req *Request) pricing.Quote {
	q := pricing.Quote{
		Kind:      req.Kind,
		SubOption: req.SubOption,
	}
	if req.Vehicle != nil {
		q.SizeClass = req.Vehicle.SizeClass
	}

	switch req.Kind {
	case domain.KindLavage:
		q.VehicleType = req.VehicleType
		if req.VehicleType == domain.VehicleMoto && req.Moto != nil {
			q.SizeClass = req.Moto.SizeClass
		}
	case domain.KindPolissage:
		q.PieceCount = ptr.Value(req.PieceCount)
	default:
		q.SubOption = ""
	}
	return q
}

// isDateInPast проверяет, что дата в прошлом (без учета времени)
func isDateInPast(date time.Time, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}

// samePrice сравнивает цену клиента с пересчитанной
func samePrice(client, resolved *float64) bool {
	if client == nil || resolved == nil {
		return client == nil && resolved == nil
	}
	return *client == *resolved
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
