package resolve_tier_price

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/lensroom/studio-booking-service/internal/api/handlers"
	"github.com/lensroom/studio-booking-service/internal/domain"
	resolveTierPrice "github.com/lensroom/studio-booking-service/internal/usecase/resolve_tier_price"
)

const (
	msgInvalidRoomID  = "некорректный ID комнаты"
	msgMissingSlots   = "количество слотов обязательно"
	msgInvalidSlots   = "некорректное количество слотов"
	msgMissingDate    = "дата обязательна"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRuleNotFound   = "тарифное правило не найдено"
	msgNoMatchingTier = "нет тарифа для указанного количества слотов"
)

type Handler struct {
	useCase ResolveTierPriceUseCase
	logger  Logger
}

func NewHandler(useCase ResolveTierPriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/tier-price
// Query params: slots (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/tier-price - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	slotsStr := r.URL.Query().Get("slots")
	if slotsStr == "" {
		h.logger.Warn("GET /rooms/{id}/tier-price - Missing slots")
		handlers.RespondBadRequest(w, msgMissingSlots)
		return
	}

	slots, err := strconv.Atoi(slotsStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/tier-price - Invalid slots: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlots)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /rooms/{id}/tier-price - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/tier-price - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &resolveTierPrice.Request{
		RoomID:    roomID,
		SlotCount: slots,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, resolveTierPrice.ErrPriceRuleNotFound):
			h.logger.Warn("GET /rooms/{id}/tier-price - Rule not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.Is(err, resolveTierPrice.ErrNoMatchingTier):
			h.logger.Warn("GET /rooms/{id}/tier-price - No matching tier: room_id=%d, slots=%d", roomID, slots)
			handlers.RespondNotFound(w, msgNoMatchingTier)

		case errors.Is(err, resolveTierPrice.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/tier-price - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlots)

		default:
			h.logger.Error("GET /rooms/{id}/tier-price - Failed to resolve price: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /rooms/{id}/tier-price - Price resolved successfully: room_id=%d, slots=%d, price=%.2f",
		roomID, slots, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, response)
}
