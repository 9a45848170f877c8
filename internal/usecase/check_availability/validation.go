package check_availability

import "fmt"

// validateRequest валидирует входные данные запроса.
// Порядок дат намеренно не проверяется: вырожденный диапазон
// (checkOut <= checkIn) дает пустое сканирование, а не ошибку
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

	if req.NumberOfUnits < 1 {
		return fmt.Errorf("%w: numberOfUnits must be at least 1", ErrInvalidInput)
	}

	return nil
}
