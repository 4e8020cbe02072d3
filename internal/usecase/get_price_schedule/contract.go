package get_price_schedule

import (
	"context"

	"github.com/lensroom/studio-booking-service/internal/domain"
)

// PricingRepository интерфейс репозитория тарифов
type PricingRepository interface {
	// GetPackageByRoom получает пакет тарификации комнаты
	GetPackageByRoom(ctx context.Context, roomID int64) (*domain.Package, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
