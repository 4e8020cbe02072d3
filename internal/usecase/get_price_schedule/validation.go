package get_price_schedule

import "fmt"

const maxScheduleHours = 24

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: room_id must be positive, got %d", ErrInvalidInput, req.RoomID)
	}

	if req.Hours < 1 {
		return fmt.Errorf("%w: hours must be at least 1, got %d", ErrInvalidInput, req.Hours)
	}

	if req.Hours > maxScheduleHours {
		return fmt.Errorf("%w: hours must not exceed %d, got %d", ErrInvalidInput, maxScheduleHours, req.Hours)
	}

	return nil
}
