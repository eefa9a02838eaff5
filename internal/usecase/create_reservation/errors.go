package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается, когда дата бронирования уже прошла
	ErrInvalidDate = errors.New("invalid reservation date")

	// ErrInvalidTimeSlot возвращается, когда час не входит в сетку услуги
	ErrInvalidTimeSlot = errors.New("hour is not part of the service grid")

	// ErrVehicleRequired возвращается при неполном описании транспортного средства
	ErrVehicleRequired = errors.New("vehicle description is incomplete")

	// ErrColorRequired возвращается, когда для tolerie не указан цвет
	ErrColorRequired = errors.New("color is required")

	// ErrPriceUnavailable возвращается, когда цену нельзя вычислить по выбранным опциям
	ErrPriceUnavailable = errors.New("price cannot be resolved for the selected options")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
