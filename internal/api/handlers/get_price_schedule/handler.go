package get_price_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lensroom/studio-booking-service/internal/api/handlers"
	getPriceSchedule "github.com/lensroom/studio-booking-service/internal/usecase/get_price_schedule"
)

const (
	msgInvalidRoomID   = "некорректный ID комнаты"
	msgMissingHours    = "количество часов обязательно"
	msgInvalidHours    = "некорректное количество часов"
	msgPackageNotFound = "пакет тарификации не найден"
)

type Handler struct {
	useCase GetPriceScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetPriceScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/price-schedule
// Query params: hours (required, 1..24)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/price-schedule - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	hoursStr := r.URL.Query().Get("hours")
	if hoursStr == "" {
		h.logger.Warn("GET /rooms/{id}/price-schedule - Missing hours")
		handlers.RespondBadRequest(w, msgMissingHours)
		return
	}

	hours, err := strconv.Atoi(hoursStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/price-schedule - Invalid hours: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHours)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getPriceSchedule.Request{
		RoomID: roomID,
		Hours:  hours,
	})
	if err != nil {
		switch {
		case errors.Is(err, getPriceSchedule.ErrPackageNotFound):
			h.logger.Warn("GET /rooms/{id}/price-schedule - Package not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, getPriceSchedule.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/price-schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("GET /rooms/{id}/price-schedule - Failed to get schedule: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /rooms/{id}/price-schedule - Schedule retrieved successfully: room_id=%d, entries_count=%d",
		roomID, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, response)
}
