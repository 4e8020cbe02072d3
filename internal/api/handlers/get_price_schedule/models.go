package get_price_schedule

import (
	getPriceSchedule "github.com/lensroom/studio-booking-service/internal/usecase/get_price_schedule"
)

// PriceScheduleResponse HTTP response model
type PriceScheduleResponse struct {
	RoomID      int64                `json:"roomId"`
	PackageID   int64                `json:"packageId"`
	PackageName string               `json:"packageName"`
	Mode        string               `json:"mode"`
	Entries     []PriceScheduleEntry `json:"entries"`
}

// PriceScheduleEntry цена бронирования длительностью EndHour часов
type PriceScheduleEntry struct {
	EndHour    int     `json:"endHour"`
	TotalPrice float64 `json:"totalPrice"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getPriceSchedule.Response) *PriceScheduleResponse {
	entries := make([]PriceScheduleEntry, len(resp.Entries))
	for i, entry := range resp.Entries {
		entries[i] = PriceScheduleEntry{
			EndHour:    entry.EndHour,
			TotalPrice: entry.TotalPrice,
		}
	}

	return &PriceScheduleResponse{
		RoomID:      resp.RoomID,
		PackageID:   resp.PackageID,
		PackageName: resp.PackageName,
		Mode:        string(resp.Mode),
		Entries:     entries,
	}
}
