package domain

import (
	"time"

	"github.com/lensroom/studio-booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending           BookingStatus = "pending"
	StatusConfirmed         BookingStatus = "confirmed"
	StatusInProgress        BookingStatus = "in_progress"
	StatusCompleted         BookingStatus = "completed"
	StatusCancelledByUser   BookingStatus = "cancelled_by_user"
	StatusCancelledByStudio BookingStatus = "cancelled_by_studio"
	StatusNoShow            BookingStatus = "no_show"
)

// PricingMode denormalized pricing mode of a booking
type PricingMode string

const (
	PricingModeFixed  PricingMode = "fixed"
	PricingModeHourly PricingMode = "hourly"
	PricingModeTiered PricingMode = "tiered"
)

// Booking represents a studio room booking in the system
type Booking struct {
	ID              int64
	UserID          int64
	StudioID        int64
	RoomID          int64 // ID комнаты студии (студия может сдавать несколько залов)
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized data for history
	RoomName    string
	TotalPrice  float64
	PricingMode PricingMode
	PackageID   *int64
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser &&
		b.Status != StatusCancelledByStudio &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByStudio
}

// IsCompleted returns true if the booking is completed or was a no-show
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted || b.Status == StatusNoShow
}

// SlotCount количество часовых слотов, занятых бронированием
func (b *Booking) SlotCount() int {
	return b.DurationMinutes / SlotDurationMinutes
}

// StudioBookingsFilter фильтр для получения бронирований студии
type StudioBookingsFilter struct {
	StudioID        int64          // Обязательный параметр
	RoomID          *int64         // Фильтр по комнате (опционально, если nil - все комнаты)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли неактивные бронирования (отмененные, no-show)
}
