package get_studio_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lensroom/studio-booking-service/internal/api/handlers"
	"github.com/lensroom/studio-booking-service/internal/api/middleware"
	"github.com/lensroom/studio-booking-service/internal/service/bookings"
)

const (
	msgInvalidStudioID = "некорректный ID студии"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidParams   = "некорректные параметры запроса"
	msgStudioNotFound  = "студия не найдена"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/studios/{studioId}/bookings
// Query params: roomId, status, startDate, endDate, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	studioID, err := strconv.ParseInt(vars["studioId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /studios/{id}/bookings - Invalid studio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudioID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /studios/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		studioID,
		userID,
		query.Get("roomId"),
		query.Get("status"),
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("includeInactive"),
	)
	if err != nil {
		h.logger.Warn("GET /studios/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем бронирования студии (сервис сам проверит права владельца)
	result, err := h.service.GetStudioBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrStudioNotFound):
			h.logger.Warn("GET /studios/{id}/bookings - Studio not found: studio_id=%d", studioID)
			handlers.RespondNotFound(w, msgStudioNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /studios/{id}/bookings - Access denied: studio_id=%d, user_id=%d",
				studioID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /studios/{id}/bookings - Invalid filter: studio_id=%d", studioID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /studios/{id}/bookings - Failed to get bookings: studio_id=%d, error=%v",
				studioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /studios/{id}/bookings - Bookings retrieved successfully: studio_id=%d, count=%d",
		studioID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
