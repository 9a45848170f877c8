package get_price_quote

import "fmt"

// validateRequest валидирует входные данные запроса.
// В отличие от проверок доступности расчету стоимости нужна
// хотя бы одна ночь: вырожденный диапазон отбрасывается
func validateRequest(req *Request) error {
	if req.RoomTypeID <= 0 {
		return fmt.Errorf("%w: roomTypeID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	if !req.CheckOut.After(req.CheckIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidInput)
	}

	if req.NumberOfUnits < 1 {
		return fmt.Errorf("%w: numberOfUnits must be at least 1", ErrInvalidInput)
	}

	return nil
}
