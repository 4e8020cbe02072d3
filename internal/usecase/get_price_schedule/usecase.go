package get_price_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/lensroom/studio-booking-service/internal/domain"
	"github.com/lensroom/studio-booking-service/internal/infra/storage/pricing"
)

// UseCase use case для получения ценовой шкалы пакета комнаты
type UseCase struct {
	pricingRepo PricingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pricingRepo PricingRepository, logger Logger) *UseCase {
	return &UseCase{
		pricingRepo: pricingRepo,
		logger:      logger,
	}
}

// Execute возвращает накопительную таблицу цен пакета комнаты
// на каждую длительность от 1 до req.Hours часов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetPriceSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пакет тарификации комнаты
	pkg, err := uc.pricingRepo.GetPackageByRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, pricing.ErrPackageNotFound) {
			uc.logger.Warn("GetPriceSchedule: package not found for room %d", req.RoomID)
			return nil, fmt.Errorf("%w: room_id=%d", ErrPackageNotFound, req.RoomID)
		}
		uc.logger.Error("GetPriceSchedule: failed to get package for room %d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	// 3. Строим ценовую шкалу
	schedule, err := domain.ComputePriceSchedule(pkg, req.Hours)
	if err != nil {
		// Диапазон часов уже проверен валидацией, сюда попадать не должны
		uc.logger.Error("GetPriceSchedule: failed to compute schedule: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Формируем ответ
	entries := make([]Entry, 0, len(schedule))
	for _, entry := range schedule {
		entries = append(entries, Entry{
			EndHour:    entry.EndTime,
			TotalPrice: entry.TotalPrice,
		})
	}

	uc.logger.Info("GetPriceSchedule: built %d entries for room %d (package %d, mode %s)",
		len(entries), req.RoomID, pkg.ID, pkg.Mode)

	return &Response{
		RoomID:      req.RoomID,
		PackageID:   pkg.ID,
		PackageName: pkg.Name,
		Mode:        pkg.Mode,
		Entries:     entries,
	}, nil
}
