package booking

import "errors"

var (
	// ErrSignInRequired возвращается при попытке отправить форму без авторизации
	ErrSignInRequired = errors.New("booking: sign-in required")

	// ErrNoDateSelected возвращается, когда дата ещё не выбрана
	ErrNoDateSelected = errors.New("booking: no date selected")

	// ErrAvailabilityNotLoaded возвращается, когда слоты на выбранную дату не загружены
	ErrAvailabilityNotLoaded = errors.New("booking: availability not loaded")

	// ErrAvailabilityFailed возвращается при ошибке загрузки занятых слотов
	ErrAvailabilityFailed = errors.New("booking: failed to load availability")

	// ErrSuperseded возвращается, когда ответ пришёл для даты, которая уже не выбрана
	ErrSuperseded = errors.New("booking: response superseded by a newer date selection")

	// ErrIncompleteForm возвращается, когда не заполнены обязательные поля или цена не определена
	ErrIncompleteForm = errors.New("booking: form is incomplete")

	// ErrSlotUnavailable возвращается, когда выбранный слот занят или не входит в сетку
	ErrSlotUnavailable = errors.New("booking: slot is not available")

	// ErrSubmitInProgress возвращается, пока предыдущая отправка не завершилась
	ErrSubmitInProgress = errors.New("booking: submission in progress")

	// ErrAlreadySubmitted возвращается при повторной отправке уже принятой формы
	ErrAlreadySubmitted = errors.New("booking: already submitted")

	// ErrSubmitFailed возвращается, когда сервер отклонил бронирование или не ответил
	ErrSubmitFailed = errors.New("booking: submission failed")
)
