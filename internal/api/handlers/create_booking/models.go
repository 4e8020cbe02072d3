package create_booking

import (
	"time"

	"github.com/lensroom/studio-booking-service/internal/domain"
	createBooking "github.com/lensroom/studio-booking-service/internal/usecase/create_booking"
	"github.com/lensroom/studio-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StudioID        int64   `json:"studioId"`
	RoomID          int64   `json:"roomId"`
	BookingDate     string  `json:"bookingDate"` // "2026-09-15"
	StartTime       string  `json:"startTime"`   // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	StudioID        int64   `json:"studioId"`
	RoomID          int64   `json:"roomId"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	RoomName        string  `json:"roomName"`
	TotalPrice      float64 `json:"totalPrice"`
	PricingMode     string  `json:"pricingMode"`
	PackageID       *int64  `json:"packageId,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	notes := ""
	if r.Notes != nil {
		notes = *r.Notes
	}

	return &createBooking.Request{
		UserID:          userID,
		StudioID:        r.StudioID,
		RoomID:          r.RoomID,
		BookingDate:     bookingDate,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Notes:           notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	b := resp.Booking

	return &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		StudioID:        b.StudioID,
		RoomID:          b.RoomID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		RoomName:        b.RoomName,
		TotalPrice:      b.TotalPrice,
		PricingMode:     string(b.PricingMode),
		PackageID:       b.PackageID,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}
