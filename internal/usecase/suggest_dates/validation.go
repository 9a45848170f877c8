package suggest_dates

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomTypeID <= 0 {
		return fmt.Errorf("%w: roomTypeID must be positive", ErrInvalidInput)
	}

	if req.PreferredCheckIn.IsZero() {
		return fmt.Errorf("%w: preferredCheckIn is required", ErrInvalidInput)
	}

	if req.NumberOfNights < 1 {
		return fmt.Errorf("%w: numberOfNights must be at least 1", ErrInvalidInput)
	}

	if req.SearchRadius < 0 {
		return fmt.Errorf("%w: searchRadius must not be negative", ErrInvalidInput)
	}

	return nil
}
