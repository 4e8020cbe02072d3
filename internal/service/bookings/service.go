package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/lensroom/studio-booking-service/internal/domain"
	bookingRepo "github.com/lensroom/studio-booking-service/internal/infra/storage/booking"
	studioClient "github.com/lensroom/studio-booking-service/internal/integrations/studioservice"
	"github.com/lensroom/studio-booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	studioClient StudioServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	studioClient StudioServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		studioClient: studioClient,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только свое бронирование
// или если он является владельцем студии
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetStudioBookings получает бронирования студии с гибкой фильтрацией
// Поддерживает фильтрацию по комнате, периоду, статусу и включению
// неактивных бронирований. Доступно только владельцу студии
func (s *Service) GetStudioBookings(ctx context.Context, req *models.GetStudioBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetStudioBookings: fetching bookings for studio=%d, user=%d", req.StudioID, req.UserID)

	// Проверяем права владельца
	if err := s.checkOwnerAccess(ctx, req.StudioID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetStudioBookings: invalid filter for studio=%d: %v", req.StudioID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByStudioWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetStudioBookings: repository error for studio=%d: %v", req.StudioID, err)
		return nil, fmt.Errorf("%w: GetStudioBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStudioBookings: fetched %d bookings for studio=%d", len(bookings), req.StudioID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только свое бронирование (cancelled_by_user)
// Владелец студии может отменить любое бронирование студии (cancelled_by_studio)
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.BookingStatus

	if booking.UserID == req.UserID {
		cancelStatus = domain.StatusCancelledByUser
	} else {
		// Не владелец брони - проверяем права владельца студии
		if err := s.checkOwnerAccess(ctx, booking.StudioID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByStudio
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Доступ у владельца брони и у владельца студии
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.UserID == userID {
		return nil
	}

	if err := s.checkOwnerAccess(ctx, booking.StudioID, userID); err != nil {
		// Ошибка уже залогирована в checkOwnerAccess
		return ErrAccessDenied
	}

	return nil
}

// checkOwnerAccess проверяет, что пользователь является владельцем студии
func (s *Service) checkOwnerAccess(ctx context.Context, studioID int64, userID int64) error {
	studio, err := s.studioClient.GetStudio(ctx, studioID)
	if err != nil {
		if errors.Is(err, studioClient.ErrStudioNotFound) {
			s.logger.Warn("checkOwnerAccess: studio id=%d not found", studioID)
			return ErrStudioNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get studio id=%d: %v", studioID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get studio: %v", ErrInternal, err)
	}

	if studio.OwnerID != userID {
		s.logger.Warn("checkOwnerAccess: user=%d is not the owner of studio=%d", userID, studioID)
		return ErrAccessDenied
	}

	return nil
}
