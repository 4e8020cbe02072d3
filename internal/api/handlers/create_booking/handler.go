package create_booking

import (
	"errors"
	"net/http"

	"github.com/lensroom/studio-booking-service/internal/api/handlers"
	"github.com/lensroom/studio-booking-service/internal/api/middleware"
	createBooking "github.com/lensroom/studio-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidDateOrTime    = "некорректный формат даты или времени"
	msgWindowNotAvailable   = "выбранное время недоступно"
	msgStudioNotFound       = "студия не найдена"
	msgRoomNotFound         = "комната не найдена"
	msgStudioClosed         = "студия закрыта в выбранную дату"
	msgInvalidBookingDate   = "некорректная дата бронирования"
	msgPricingNotConfigured = "тарификация комнаты не настроена"
	msgInvalidInput         = "некорректные параметры бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrWindowNotAvailable):
			h.logger.Warn("POST /bookings - Window not available: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondConflict(w, msgWindowNotAvailable)

		case errors.Is(err, createBooking.ErrStudioNotFound):
			h.logger.Warn("POST /bookings - Studio not found: studio_id=%d", req.StudioID)
			handlers.RespondNotFound(w, msgStudioNotFound)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: studio_id=%d, room_id=%d", req.StudioID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrStudioClosed):
			h.logger.Warn("POST /bookings - Studio closed: studio_id=%d, date=%s", req.StudioID, req.BookingDate)
			handlers.RespondBadRequest(w, msgStudioClosed)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, date=%s", userID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrPricingNotConfigured):
			h.logger.Warn("POST /bookings - Pricing not configured: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgPricingNotConfigured)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, room_id=%d, error=%v",
				userID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, room_id=%d",
		result.Booking.ID, userID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
