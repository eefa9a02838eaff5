package get_quote

import "github.com/m04kA/SMC-WashBooking/internal/pricing"

// PriceResolver вычисляет цену по параметрам услуги
type PriceResolver func(q pricing.Quote) (*float64, error)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
