package get_free_windows

import "errors"

var (
	// ErrStudioNotFound возвращается, когда студия не найдена
	ErrStudioNotFound = errors.New("get_free_windows: studio not found")

	// ErrRoomNotFound возвращается, когда комната не найдена в студии
	ErrRoomNotFound = errors.New("get_free_windows: room not found")

	// ErrInvalidDate возвращается при некорректной дате запроса
	ErrInvalidDate = errors.New("get_free_windows: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_free_windows: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_free_windows: internal error")
)
