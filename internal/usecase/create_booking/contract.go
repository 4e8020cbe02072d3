package create_booking

import (
	"context"
	"time"

	"github.com/lensroom/studio-booking-service/internal/domain"
	"github.com/lensroom/studio-booking-service/internal/integrations/studioservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// Create создает бронирование и возвращает его с заполненным ID
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetReservationsByRoomAndDate получает занятые интервалы комнаты на дату,
	// отсортированные по началу. Внутри транзакции блокирует строки (FOR UPDATE)
	GetReservationsByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]domain.Reservation, error)
}

// PricingRepository интерфейс репозитория тарифов
type PricingRepository interface {
	GetPackageByRoom(ctx context.Context, roomID int64) (*domain.Package, error)
	GetPriceRuleByRoom(ctx context.Context, roomID int64) (*domain.PriceRule, error)
	GetTiersByRule(ctx context.Context, ruleID int64) ([]domain.PriceTier, error)
	GetExceptionByID(ctx context.Context, id int64) (*domain.PriceException, error)
}

// StudioServiceClient интерфейс клиента для StudioService
type StudioServiceClient interface {
	GetStudio(ctx context.Context, studioID int64) (*studioservice.Studio, error)
	GetRoom(ctx context.Context, studioID, roomID int64) (*studioservice.Room, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
