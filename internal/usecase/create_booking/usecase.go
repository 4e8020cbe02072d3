package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lensroom/studio-booking-service/internal/domain"
	"github.com/lensroom/studio-booking-service/internal/infra/storage/pricing"
	"github.com/lensroom/studio-booking-service/internal/integrations/studioservice"
	"github.com/lensroom/studio-booking-service/pkg/ptr"
	"github.com/lensroom/studio-booking-service/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	pricingRepo  PricingRepository
	studioClient StudioServiceClient
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	pricingRepo PricingRepository,
	studioClient StudioServiceClient,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		pricingRepo:  pricingRepo,
		studioClient: studioClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает бронирование: проверяет доступность интервала,
// считает цену и записывает бронь в одной SERIALIZABLE-транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата бронирования не может быть в прошлом
	if isDateInPast(req.BookingDate, now) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, req.BookingDate.Format(domain.DateFormat))
	}

	// 4. Проверяем существование студии
	studio, err := uc.studioClient.GetStudio(ctx, req.StudioID)
	if err != nil {
		if errors.Is(err, studioservice.ErrStudioNotFound) {
			return nil, fmt.Errorf("%w: studio_id=%d", ErrStudioNotFound, req.StudioID)
		}
		uc.logger.Error("CreateBooking: failed to get studio %d: %v", req.StudioID, err)
		return nil, fmt.Errorf("%w: failed to get studio: %v", ErrInternal, err)
	}

	// 5. Проверяем существование комнаты
	room, err := uc.studioClient.GetRoom(ctx, req.StudioID, req.RoomID)
	if err != nil {
		if errors.Is(err, studioservice.ErrRoomNotFound) {
			return nil, fmt.Errorf("%w: room_id=%d", ErrRoomNotFound, req.RoomID)
		}
		uc.logger.Error("CreateBooking: failed to get room %d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 6. Границы рабочего дня студии
	hours := getWorkingHoursForDay(studio, req.BookingDate)
	dayStart, dayEnd, open, err := operatingBounds(hours)
	if err != nil {
		uc.logger.Error("CreateBooking: invalid working hours for studio %d: %v", req.StudioID, err)
		return nil, fmt.Errorf("%w: invalid working hours: %v", ErrInternal, err)
	}
	if !open {
		return nil, fmt.Errorf("%w: %s", ErrStudioClosed, req.BookingDate.Format(domain.DateFormat))
	}

	// 7. Переводим интервал брони в минуты
	startMin, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start_time: %v", ErrInvalidInput, err)
	}
	endMin := startMin + req.DurationMinutes
	if endMin > types.MinutesPerDay {
		return nil, fmt.Errorf("%w: booking crosses midnight", ErrInvalidInput)
	}

	var created *domain.Booking

	// 8. Проверка доступности, расчет цены и запись в одной транзакции.
	// SERIALIZABLE вместе с FOR UPDATE в выборке резервов исключает
	// двойное бронирование при конкурентных запросах
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Занятые интервалы комнаты на дату (строки блокируются)
		reservations, err := uc.bookingRepo.GetReservationsByRoomAndDate(txCtx, req.RoomID, req.BookingDate)
		if err != nil {
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 8.2. Свободные окна дня
		windows, err := domain.ComputeFreeWindows(dayStart, dayEnd, reservations)
		if err != nil {
			return fmt.Errorf("%w: failed to compute free windows: %v", ErrInternal, err)
		}

		// 8.3. На сегодня прошедшие окна недоступны
		if isSameDay(req.BookingDate, now) {
			windows = domain.FilterPastWindows(windows, minutesOfDay(now))
		}

		// 8.4. Интервал должен целиком лежать в одном свободном окне
		if !fitsAnyWindow(windows, startMin, endMin) {
			return fmt.Errorf("%w: %s + %d min", ErrWindowNotAvailable, req.StartTime, req.DurationMinutes)
		}

		// 8.5. Рассчитываем цену
		price, mode, packageID, err := uc.resolvePrice(txCtx, req)
		if err != nil {
			return err
		}

		// 8.6. Создаем бронирование
		booking := &domain.Booking{
			UserID:          req.UserID,
			StudioID:        req.StudioID,
			RoomID:          req.RoomID,
			BookingDate:     req.BookingDate,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			Status:          domain.StatusConfirmed,
			RoomName:        room.Name,
			TotalPrice:      price,
			PricingMode:     mode,
			PackageID:       packageID,
		}
		if req.Notes != "" {
			booking.Notes = ptr.Ptr(req.Notes)
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking %d for user %d (room %d, %s %s, %.2f)",
		created.ID, req.UserID, req.RoomID, req.BookingDate.Format(domain.DateFormat), req.StartTime, created.TotalPrice)

	return &Response{Booking: created}, nil
}

// resolvePrice определяет цену бронирования: комнаты с тарифным правилом
// тарифицируются по количеству слотов, остальные - по пакету
func (uc *UseCase) resolvePrice(ctx context.Context, req *Request) (float64, domain.PricingMode, *int64, error) {
	slotCount := req.DurationMinutes / domain.SlotDurationMinutes

	rule, err := uc.pricingRepo.GetPriceRuleByRoom(ctx, req.RoomID)
	switch {
	case err == nil:
		price, err := uc.resolveTierPrice(ctx, rule, slotCount, req.BookingDate)
		if err != nil {
			return 0, "", nil, err
		}
		return price, domain.PricingModeTiered, nil, nil
	case errors.Is(err, pricing.ErrPriceRuleNotFound):
		// У комнаты нет правила - используем пакет
	default:
		return 0, "", nil, fmt.Errorf("%w: failed to get price rule: %v", ErrInternal, err)
	}

	pkg, err := uc.pricingRepo.GetPackageByRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, pricing.ErrPackageNotFound) {
			return 0, "", nil, fmt.Errorf("%w: room_id=%d", ErrPricingNotConfigured, req.RoomID)
		}
		return 0, "", nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	price, err := packagePrice(pkg, slotCount)
	if err != nil {
		return 0, "", nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	mode := domain.PricingModeFixed
	if pkg.Mode == domain.PackageModeHourly {
		mode = domain.PricingModeHourly
	}

	return price, mode, &pkg.ID, nil
}

// resolveTierPrice выбирает тариф по количеству слотов и применяет
// ценовое исключение, если оно действует на дату брони
func (uc *UseCase) resolveTierPrice(ctx context.Context, rule *domain.PriceRule, slotCount int, date time.Time) (float64, error) {
	tiers, err := uc.pricingRepo.GetTiersByRule(ctx, rule.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get tiers: %v", ErrInternal, err)
	}

	tier, err := domain.SelectTier(tiers, slotCount)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPricingNotConfigured, err)
	}

	if tier.ExceptionID == nil {
		return tier.TotalPrice, nil
	}

	exception, err := uc.pricingRepo.GetExceptionByID(ctx, *tier.ExceptionID)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get exception: %v", ErrInternal, err)
	}
	if exception.AppliesTo(date) {
		return exception.Price, nil
	}

	return tier.TotalPrice, nil
}

// packagePrice считает цену бронирования по пакету
func packagePrice(pkg *domain.Package, slotCount int) (float64, error) {
	if pkg.Mode == domain.PackageModeFixed {
		return pkg.Price, nil
	}

	schedule, err := domain.ComputePriceSchedule(pkg, slotCount)
	if err != nil {
		return 0, err
	}
	return schedule[len(schedule)-1].TotalPrice, nil
}

// fitsAnyWindow возвращает true, если интервал [start, end)
// целиком лежит в одном из окон
func fitsAnyWindow(windows []domain.TimeWindow, start, end int) bool {
	for _, w := range windows {
		if w.Contains(start, end) {
			return true
		}
	}
	return false
}
