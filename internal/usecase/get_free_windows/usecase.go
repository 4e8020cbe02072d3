package get_free_windows

import (
	"context"
	"errors"
	"fmt"

	"github.com/lensroom/studio-booking-service/internal/domain"
	studioClient "github.com/lensroom/studio-booking-service/internal/integrations/studioservice"
	"github.com/lensroom/studio-booking-service/pkg/types"
)

// UseCase use case для получения свободных окон комнаты на дату
type UseCase struct {
	bookingRepo  BookingRepository
	studioClient StudioServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	studioClient StudioServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		studioClient: studioClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных окон
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeWindows: studio=%d, room=%d, date=%s",
		req.StudioID, req.RoomID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFreeWindows: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetFreeWindows: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем студию с расписанием работы
	studio, err := uc.studioClient.GetStudio(ctx, req.StudioID)
	if err != nil {
		if errors.Is(err, studioClient.ErrStudioNotFound) {
			uc.logger.Warn("GetFreeWindows: studio id=%d not found", req.StudioID)
			return nil, ErrStudioNotFound
		}
		uc.logger.Error("GetFreeWindows: failed to get studio id=%d: %v", req.StudioID, err)
		return nil, fmt.Errorf("%w: failed to get studio: %v", ErrInternal, err)
	}

	// 5. Проверяем существование комнаты
	if _, err := uc.studioClient.GetRoom(ctx, req.StudioID, req.RoomID); err != nil {
		if errors.Is(err, studioClient.ErrRoomNotFound) {
			uc.logger.Warn("GetFreeWindows: room id=%d not found in studio id=%d", req.RoomID, req.StudioID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetFreeWindows: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 6. Определяем рабочие часы на указанную дату
	workingHours := getWorkingHoursForDay(studio, req.Date)
	dayStart, dayEnd, open, err := operatingBounds(workingHours)
	if err != nil {
		uc.logger.Error("GetFreeWindows: invalid working hours for studio id=%d: %v", req.StudioID, err)
		return nil, fmt.Errorf("%w: invalid working hours: %v", ErrInternal, err)
	}
	if !open {
		uc.logger.Info("GetFreeWindows: studio id=%d is closed on %s",
			req.StudioID, req.Date.Format(domain.DateFormat))
		return &Response{
			Date:     req.Date,
			StudioID: req.StudioID,
			RoomID:   req.RoomID,
			Windows:  []Window{},
		}, nil
	}

	// 7. Получаем занятые интервалы комнаты на дату (отсортированы по началу)
	reservations, err := uc.bookingRepo.GetReservationsByRoomAndDate(ctx, req.RoomID, req.Date)
	if err != nil {
		uc.logger.Error("GetFreeWindows: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 8. Вычисляем свободные окна
	windows, err := domain.ComputeFreeWindows(dayStart, dayEnd, reservations)
	if err != nil {
		// Некорректные интервалы в хранилище - это повреждение данных,
		// а не ошибка клиента
		uc.logger.Error("GetFreeWindows: failed to compute windows: %v", err)
		return nil, fmt.Errorf("%w: failed to compute windows: %v", ErrInternal, err)
	}

	// 9. Если запрошенная дата - сегодня, отбрасываем окна из прошлого
	if isSameDay(req.Date, now) {
		windows = domain.FilterPastWindows(windows, minutesOfDay(now))
	}

	// 10. Конвертируем окна в модель ответа
	result, err := toWindows(windows)
	if err != nil {
		uc.logger.Error("GetFreeWindows: failed to convert windows: %v", err)
		return nil, fmt.Errorf("%w: failed to convert windows: %v", ErrInternal, err)
	}

	uc.logger.Info("GetFreeWindows: found %d windows for studio=%d, room=%d, date=%s",
		len(result), req.StudioID, req.RoomID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:     req.Date,
		StudioID: req.StudioID,
		RoomID:   req.RoomID,
		Windows:  result,
	}, nil
}

// toWindows конвертирует окна из минут в модель ответа
func toWindows(windows []domain.TimeWindow) ([]Window, error) {
	result := make([]Window, 0, len(windows))

	for _, w := range windows {
		start, err := types.NewTimeStringFromMinutes(w.Start)
		if err != nil {
			return nil, err
		}

		end, err := types.NewTimeStringFromMinutes(w.End)
		if err != nil {
			return nil, err
		}

		result = append(result, Window{
			StartTime:       start,
			EndTime:         end,
			DurationMinutes: w.DurationMinutes(),
		})
	}

	return result, nil
}
