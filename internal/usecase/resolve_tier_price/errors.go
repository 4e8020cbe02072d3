package resolve_tier_price

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("resolve_tier_price: invalid input")
	// ErrPriceRuleNotFound тарифное правило для комнаты не найдено
	ErrPriceRuleNotFound = errors.New("resolve_tier_price: price rule not found")
	// ErrNoMatchingTier ни один тариф не покрывает количество слотов
	ErrNoMatchingTier = errors.New("resolve_tier_price: no matching tier")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("resolve_tier_price: internal error")
)
