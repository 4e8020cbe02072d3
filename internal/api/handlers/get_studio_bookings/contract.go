package get_studio_bookings

import (
	"context"

	"github.com/lensroom/studio-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetStudioBookings(ctx context.Context, req *models.GetStudioBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
