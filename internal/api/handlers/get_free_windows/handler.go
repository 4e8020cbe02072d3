package get_free_windows

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lensroom/studio-booking-service/internal/api/handlers"
	getFreeWindows "github.com/lensroom/studio-booking-service/internal/usecase/get_free_windows"
)

const (
	msgInvalidStudioID = "некорректный ID студии"
	msgInvalidRoomID   = "некорректный ID комнаты"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast      = "дата не может быть в прошлом"
	msgStudioNotFound  = "студия не найдена"
	msgRoomNotFound    = "комната не найдена"
)

type Handler struct {
	useCase GetFreeWindowsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeWindowsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/studios/{studioId}/rooms/{roomId}/free-windows
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	studioID, err := strconv.ParseInt(vars["studioId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /studios/{id}/rooms/{id}/free-windows - Invalid studio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudioID)
		return
	}

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /studios/{id}/rooms/{id}/free-windows - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /studios/{id}/rooms/{id}/free-windows - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(studioID, roomID, dateStr)
	if err != nil {
		h.logger.Warn("GET /studios/{id}/rooms/{id}/free-windows - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getFreeWindows.ErrStudioNotFound):
			h.logger.Warn("GET /studios/{id}/rooms/{id}/free-windows - Studio not found: studio_id=%d", studioID)
			handlers.RespondNotFound(w, msgStudioNotFound)

		case errors.Is(err, getFreeWindows.ErrRoomNotFound):
			h.logger.Warn("GET /studios/{id}/rooms/{id}/free-windows - Room not found: studio_id=%d, room_id=%d",
				studioID, roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getFreeWindows.ErrInvalidDate):
			h.logger.Warn("GET /studios/{id}/rooms/{id}/free-windows - Date in past: studio_id=%d, room_id=%d",
				studioID, roomID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getFreeWindows.ErrInvalidInput):
			h.logger.Warn("GET /studios/{id}/rooms/{id}/free-windows - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStudioID)

		default:
			h.logger.Error("GET /studios/{id}/rooms/{id}/free-windows - Failed to get windows: studio_id=%d, room_id=%d, error=%v",
				studioID, roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /studios/{id}/rooms/{id}/free-windows - Windows retrieved successfully: studio_id=%d, room_id=%d, windows_count=%d",
		studioID, roomID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, response)
}
