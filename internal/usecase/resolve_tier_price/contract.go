package resolve_tier_price

import (
	"context"

	"github.com/lensroom/studio-booking-service/internal/domain"
)

// PricingRepository интерфейс репозитория тарифов
type PricingRepository interface {
	// GetPriceRuleByRoom получает тарифное правило комнаты
	GetPriceRuleByRoom(ctx context.Context, roomID int64) (*domain.PriceRule, error)
	// GetTiersByRule получает тарифы правила, отсортированные по min_slots
	GetTiersByRule(ctx context.Context, ruleID int64) ([]domain.PriceTier, error)
	// GetExceptionByID получает ценовое исключение
	GetExceptionByID(ctx context.Context, id int64) (*domain.PriceException, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
