package create_booking

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("create_booking: invalid input")
	// ErrInvalidDate дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: date is in the past")
	// ErrStudioNotFound студия не найдена
	ErrStudioNotFound = errors.New("create_booking: studio not found")
	// ErrRoomNotFound комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")
	// ErrStudioClosed студия закрыта в выбранный день
	ErrStudioClosed = errors.New("create_booking: studio is closed on this date")
	// ErrWindowNotAvailable запрошенный интервал не помещается в свободное окно
	ErrWindowNotAvailable = errors.New("create_booking: requested time is not available")
	// ErrPricingNotConfigured у комнаты нет ни тарифного правила, ни пакета
	ErrPricingNotConfigured = errors.New("create_booking: pricing is not configured for room")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("create_booking: internal error")
)
