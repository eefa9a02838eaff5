package reservationgateway

import "github.com/m04kA/SMC-WashBooking/internal/session"

// TokenSource источник bearer-токена текущего пользователя
type TokenSource interface {
	Current() (session.Identity, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
