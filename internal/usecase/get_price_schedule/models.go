package get_price_schedule

import "github.com/lensroom/studio-booking-service/internal/domain"

// Request запрос расценок пакета по часам
type Request struct {
	RoomID int64
	Hours  int
}

// Response ответ с накопительной таблицей цен
type Response struct {
	RoomID      int64
	PackageID   int64
	PackageName string
	Mode        domain.PackageMode
	Entries     []Entry
}

// Entry стоимость бронирования при окончании в EndHour часов от начала
type Entry struct {
	EndHour    int
	TotalPrice float64
}
