package overrides

import "errors"

var (
	// ErrRoomTypeNotFound возвращается, когда тип номера не найден
	ErrRoomTypeNotFound = errors.New("room type not found")

	// ErrOverrideNotFound возвращается, когда переопределение даты не найдено
	ErrOverrideNotFound = errors.New("date override not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRangeTooLong возвращается при попытке заблокировать слишком длинный диапазон
	ErrRangeTooLong = errors.New("date range is too long")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
