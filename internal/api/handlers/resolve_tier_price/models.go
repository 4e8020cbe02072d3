package resolve_tier_price

import (
	resolveTierPrice "github.com/lensroom/studio-booking-service/internal/usecase/resolve_tier_price"
)

// TierPriceResponse HTTP response model
type TierPriceResponse struct {
	RoomID           int64   `json:"roomId"`
	RuleID           int64   `json:"ruleId"`
	TierID           int64   `json:"tierId"`
	SlotCount        int     `json:"slotCount"`
	TotalPrice       float64 `json:"totalPrice"`
	ExceptionApplied bool    `json:"exceptionApplied"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveTierPrice.Response) *TierPriceResponse {
	return &TierPriceResponse{
		RoomID:           resp.RoomID,
		RuleID:           resp.RuleID,
		TierID:           resp.TierID,
		SlotCount:        resp.SlotCount,
		TotalPrice:       resp.TotalPrice,
		ExceptionApplied: resp.ExceptionApplied,
	}
}
