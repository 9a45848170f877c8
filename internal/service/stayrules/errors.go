package stayrules

import "errors"

var (
	// ErrRoomTypeNotFound возвращается, когда тип номера не найден
	ErrRoomTypeNotFound = errors.New("room type not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
