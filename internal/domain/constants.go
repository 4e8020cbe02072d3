package domain

// Длительность одного слота бронирования
// Студии сдаются с почасовой гранулярностью: один слот = один час
const (
	SlotDurationMinutes = 60
	MinutesPerDay       = 1440
)

// Business validation constants
const (
	MinBookingDurationMinutes = SlotDurationMinutes
	MaxBookingDurationMinutes = MinutesPerDay
	MaxNotesLength            = 500
	MaxCancellationReasonLen  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Такие бронирования не занимают время комнаты при расчете свободных окон
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByStudio,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
