package resolve_tier_price

import "time"

// Request запрос цены по тарифному правилу
type Request struct {
	RoomID    int64
	SlotCount int
	// Date дата бронирования, от нее зависят ценовые исключения
	Date time.Time
}

// Response разрешенная цена бронирования
type Response struct {
	RoomID     int64
	RuleID     int64
	TierID     int64
	SlotCount  int
	TotalPrice float64
	// ExceptionApplied true, если цена взята из действующего на дату исключения
	ExceptionApplied bool
}
