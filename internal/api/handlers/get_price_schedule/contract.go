package get_price_schedule

import (
	"context"

	getPriceSchedule "github.com/lensroom/studio-booking-service/internal/usecase/get_price_schedule"
)

type GetPriceScheduleUseCase interface {
	Execute(ctx context.Context, req *getPriceSchedule.Request) (*getPriceSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
