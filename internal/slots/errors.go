package slots

import "errors"

var (
	// ErrUnknownService возвращается для вида услуги без сетки слотов
	ErrUnknownService = errors.New("slots: unknown service kind")

	// ErrInvalidGrid возвращается при некорректном описании сетки
	ErrInvalidGrid = errors.New("slots: invalid grid spec")
)
