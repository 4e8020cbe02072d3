package create_booking

import (
	"time"

	"github.com/lensroom/studio-booking-service/internal/domain"
	"github.com/lensroom/studio-booking-service/pkg/types"
)

// Request запрос на создание бронирования
type Request struct {
	UserID          int64
	StudioID        int64
	RoomID          int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Notes           string
}

// Response созданное бронирование
type Response struct {
	Booking *domain.Booking
}
