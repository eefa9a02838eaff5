package booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
)

// validate проверяет готовность формы к отправке. Вызывается под мьютексом.
func (c *Controller) validate() error {
	if !c.hasDate {
		return ErrNoDateSelected
	}
	if c.view == nil {
		return ErrAvailabilityNotLoaded
	}
	if c.form.Hour.IsZero() {
		return fmt.Errorf("%w: hour is required", ErrIncompleteForm)
	}

	slot, ok := c.view.Find(c.form.Hour)
	if !ok {
		return fmt.Errorf("%w: %s is not offered", ErrSlotUnavailable, c.form.Hour)
	}
	if slot.Booked {
		return fmt.Errorf("%w: %s is already booked", ErrSlotUnavailable, c.form.Hour)
	}

	if err := c.validateVehicle(); err != nil {
		return err
	}

	if c.cfg.RequiresColor {
		if blank(c.form.Color) {
			return fmt.Errorf("%w: color is required", ErrIncompleteForm)
		}
		if tooLong(strings.TrimSpace(c.form.Color), domain.MaxColorLength) {
			return fmt.Errorf("%w: color longer than %d characters", ErrIncompleteForm, domain.MaxColorLength)
		}
	}

	if c.cfg.PriceRequired {
		if c.priceErr != nil {
			return fmt.Errorf("%w: %v", ErrIncompleteForm, c.priceErr)
		}
		if c.price == nil {
			return fmt.Errorf("%w: price is not resolved", ErrIncompleteForm)
		}
	}

	return nil
}

func (c *Controller) validateVehicle() error {
	if c.cfg.Vehicle == ShapeCarOrMoto && c.form.VehicleType == domain.VehicleMoto {
		m := c.form.Moto
		if blank(m.Name) || m.SizeClass == "" {
			return fmt.Errorf("%w: moto name and size are required", ErrIncompleteForm)
		}
		if tooLong(m.Name, domain.MaxNameLength) {
			return fmt.Errorf("%w: moto name too long", ErrIncompleteForm)
		}
		return nil
	}

	v := c.form.Vehicle
	switch {
	case blank(v.Name):
		return fmt.Errorf("%w: vehicle name is required", ErrIncompleteForm)
	case blank(v.Model):
		return fmt.Errorf("%w: vehicle model is required", ErrIncompleteForm)
	case blank(v.Year):
		return fmt.Errorf("%w: vehicle year is required", ErrIncompleteForm)
	case blank(v.Plate):
		return fmt.Errorf("%w: plate is required", ErrIncompleteForm)
	case v.SizeClass == "":
		return fmt.Errorf("%w: vehicle size is required", ErrIncompleteForm)
	case tooLong(v.Name, domain.MaxNameLength) || tooLong(v.Model, domain.MaxNameLength):
		return fmt.Errorf("%w: vehicle name or model too long", ErrIncompleteForm)
	case tooLong(v.Year, domain.MaxYearLength):
		return fmt.Errorf("%w: vehicle year too long", ErrIncompleteForm)
	case tooLong(v.Plate, domain.MaxPlateLength):
		return fmt.Errorf("%w: plate too long", ErrIncompleteForm)
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}
