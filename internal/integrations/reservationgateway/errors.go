package reservationgateway

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("reservation gateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("reservation gateway client: invalid response")
)

// APIError ответ сервиса со статусом, отличным от 2xx
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("reservation gateway: status %d", e.Status)
	}
	return fmt.Sprintf("reservation gateway: status %d: %s", e.Status, e.Message)
}

// ServerMessage возвращает текст ошибки, который сервер адресовал пользователю
func (e *APIError) ServerMessage() string {
	return e.Message
}

// IsConflict сообщает, что слот уже занят
func (e *APIError) IsConflict() bool {
	return e.Status == http.StatusConflict
}

// IsNotFound сообщает, что ресурс не найден
func (e *APIError) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}
