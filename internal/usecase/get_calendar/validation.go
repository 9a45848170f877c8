package get_calendar

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomTypeID <= 0 {
		return fmt.Errorf("%w: roomTypeID must be positive", ErrInvalidInput)
	}

	if req.Months < 0 {
		return fmt.Errorf("%w: months must not be negative", ErrInvalidInput)
	}

	return nil
}
