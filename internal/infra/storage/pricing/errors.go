package pricing

import "errors"

var (
	// ErrPackageNotFound возвращается, когда у комнаты нет пакетного тарифа
	ErrPackageNotFound = errors.New("pricing.repository: package not found")

	// ErrPriceRuleNotFound возвращается, когда у комнаты нет тарифного правила
	ErrPriceRuleNotFound = errors.New("pricing.repository: price rule not found")

	// ErrExceptionNotFound возвращается, когда ценовое исключение не найдено
	ErrExceptionNotFound = errors.New("pricing.repository: price exception not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pricing.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pricing.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pricing.repository: failed to scan row")
)
