package get_price_quote

import "errors"

var (
	// ErrRoomTypeNotFound возвращается, когда тип номера не найден
	ErrRoomTypeNotFound = errors.New("get_price_quote: room type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_price_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_price_quote: internal error")
)
