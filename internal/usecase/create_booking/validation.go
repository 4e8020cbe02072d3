package create_booking

import (
	"fmt"

	"github.com/lensroom/studio-booking-service/internal/domain"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user_id must be positive, got %d", ErrInvalidInput, req.UserID)
	}

	if req.StudioID <= 0 {
		return fmt.Errorf("%w: studio_id must be positive, got %d", ErrInvalidInput, req.StudioID)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: room_id must be positive, got %d", ErrInvalidInput, req.RoomID)
	}

	if req.BookingDate.IsZero() {
		return fmt.Errorf("%w: booking_date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start_time %q: %v", ErrInvalidInput, req.StartTime, err)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration_minutes must be positive, got %d", ErrInvalidInput, req.DurationMinutes)
	}

	// Бронирования кратны длительности слота
	if req.DurationMinutes%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: duration_minutes must be a multiple of %d, got %d",
			ErrInvalidInput, domain.SlotDurationMinutes, req.DurationMinutes)
	}

	return nil
}
