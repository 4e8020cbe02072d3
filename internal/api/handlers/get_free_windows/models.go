package get_free_windows

import (
	"time"

	"github.com/lensroom/studio-booking-service/internal/domain"
	getFreeWindows "github.com/lensroom/studio-booking-service/internal/usecase/get_free_windows"
)

// FreeWindowsResponse HTTP response model
type FreeWindowsResponse struct {
	Date     string       `json:"date"`
	StudioID int64        `json:"studioId"`
	RoomID   int64        `json:"roomId"`
	Windows  []FreeWindow `json:"windows"`
}

// FreeWindow модель свободного окна
type FreeWindow struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeWindows.Response) *FreeWindowsResponse {
	windows := make([]FreeWindow, len(resp.Windows))
	for i, w := range resp.Windows {
		windows[i] = FreeWindow{
			StartTime:       w.StartTime.String(),
			EndTime:         w.EndTime.String(),
			DurationMinutes: w.DurationMinutes,
		}
	}

	return &FreeWindowsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		StudioID: resp.StudioID,
		RoomID:   resp.RoomID,
		Windows:  windows,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(studioID, roomID int64, dateStr string) (*getFreeWindows.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getFreeWindows.Request{
		StudioID: studioID,
		RoomID:   roomID,
		Date:     date,
	}, nil
}
