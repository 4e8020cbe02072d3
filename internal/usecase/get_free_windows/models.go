package get_free_windows

import (
	"time"

	"github.com/lensroom/studio-booking-service/pkg/types"
)

// Request модель запроса на получение свободных окон
type Request struct {
	StudioID int64     // ID студии
	RoomID   int64     // ID комнаты
	Date     time.Time // Дата, на которую запрашиваются окна (без времени)
}

// Response модель ответа со списком свободных окон
type Response struct {
	Date     time.Time // Дата, на которую запрашивались окна
	StudioID int64     // ID студии
	RoomID   int64     // ID комнаты
	Windows  []Window  // Свободные окна в хронологическом порядке
}

// Window свободное окно для бронирования
type Window struct {
	StartTime       types.TimeString // Время начала окна (например, "10:00")
	EndTime         types.TimeString // Время конца окна (например, "13:30")
	DurationMinutes int              // Длительность окна в минутах
}
