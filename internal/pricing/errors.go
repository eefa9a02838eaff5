package pricing

import "errors"

var (
	// ErrIncomplete возвращается, когда не выбран обязательный параметр (размер, вариант, количество деталей).
	// Это нормальное промежуточное состояние формы, а не нулевая цена
	ErrIncomplete = errors.New("pricing: required input not selected")

	// ErrUnknownOption возвращается для значения вне тарифной таблицы
	ErrUnknownOption = errors.New("pricing: unknown option")

	// ErrUnknownService возвращается для неизвестного вида услуги
	ErrUnknownService = errors.New("pricing: unknown service kind")

	// ErrInvalidPieceCount возвращается для отрицательного количества деталей
	ErrInvalidPieceCount = errors.New("pricing: invalid piece count")
)
