package resolve_tier_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/lensroom/studio-booking-service/internal/domain"
	"github.com/lensroom/studio-booking-service/internal/infra/storage/pricing"
)

// UseCase use case для разрешения цены бронирования по тарифному правилу
type UseCase struct {
	pricingRepo PricingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pricingRepo PricingRepository, logger Logger) *UseCase {
	return &UseCase{
		pricingRepo: pricingRepo,
		logger:      logger,
	}
}

// Execute находит тариф, покрывающий запрошенное количество слотов,
// и возвращает его цену с учетом ценовых исключений на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: room_id must be positive, got %d", ErrInvalidInput, req.RoomID)
	}
	if req.SlotCount < 1 {
		return nil, fmt.Errorf("%w: slot_count must be at least 1, got %d", ErrInvalidInput, req.SlotCount)
	}

	// 2. Получаем тарифное правило комнаты
	rule, err := uc.pricingRepo.GetPriceRuleByRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, pricing.ErrPriceRuleNotFound) {
			return nil, fmt.Errorf("%w: room_id=%d", ErrPriceRuleNotFound, req.RoomID)
		}
		uc.logger.Error("ResolveTierPrice: failed to get price rule for room %d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get price rule: %v", ErrInternal, err)
	}

	// 3. Получаем тарифы правила
	tiers, err := uc.pricingRepo.GetTiersByRule(ctx, rule.ID)
	if err != nil {
		uc.logger.Error("ResolveTierPrice: failed to get tiers for rule %d: %v", rule.ID, err)
		return nil, fmt.Errorf("%w: failed to get tiers: %v", ErrInternal, err)
	}

	// 4. Выбираем тариф по количеству слотов
	tier, err := domain.SelectTier(tiers, req.SlotCount)
	if err != nil {
		uc.logger.Warn("ResolveTierPrice: no tier for %d slots in rule %d", req.SlotCount, rule.ID)
		return nil, fmt.Errorf("%w: rule_id=%d slot_count=%d", ErrNoMatchingTier, rule.ID, req.SlotCount)
	}

	// 5. Применяем ценовое исключение, если оно действует на дату
	price := tier.TotalPrice
	exceptionApplied := false
	if tier.ExceptionID != nil {
		exception, err := uc.pricingRepo.GetExceptionByID(ctx, *tier.ExceptionID)
		if err != nil {
			uc.logger.Error("ResolveTierPrice: failed to get exception %d: %v", *tier.ExceptionID, err)
			return nil, fmt.Errorf("%w: failed to get exception: %v", ErrInternal, err)
		}
		if exception.AppliesTo(req.Date) {
			price = exception.Price
			exceptionApplied = true
		}
	}

	uc.logger.Info("ResolveTierPrice: room %d, %d slots -> tier %d, price %.2f (exception=%t)",
		req.RoomID, req.SlotCount, tier.ID, price, exceptionApplied)

	return &Response{
		RoomID:           req.RoomID,
		RuleID:           rule.ID,
		TierID:           tier.ID,
		SlotCount:        req.SlotCount,
		TotalPrice:       price,
		ExceptionApplied: exceptionApplied,
	}, nil
}
