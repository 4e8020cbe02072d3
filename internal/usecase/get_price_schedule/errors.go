package get_price_schedule

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("get_price_schedule: invalid input")
	// ErrPackageNotFound пакет тарификации не найден
	ErrPackageNotFound = errors.New("get_price_schedule: package not found")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_price_schedule: internal error")
)
