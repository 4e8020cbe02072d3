package pricing

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"

	"github.com/lensroom/studio-booking-service/internal/domain"
	"github.com/lensroom/studio-booking-service/pkg/dbmetrics"
	"github.com/lensroom/studio-booking-service/pkg/psqlbuilder"
)

// DBExecutor минимальный интерфейс для выполнения запросов
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий справочных ценовых данных
// Пакеты, правила, тарифы и исключения редактируются админкой;
// этот сервис их только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ценовых данных
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetPackageByRoom получает пакетный тариф комнаты
// Режим пакета (fixed/hourly) разрешается здесь, на границе хранилища
func (r *Repository) GetPackageByRoom(ctx context.Context, roomID int64) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"room_id",
		"name",
		"mode",
		"price",
		"per_hour_discounts",
	).
		From("packages").
		Where(squirrel.Eq{"room_id": roomID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPackageByRoom - build select query: %v", ErrBuildQuery, err)
	}

	var pkg domain.Package
	var discountsRaw []byte

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pkg.ID,
		&pkg.RoomID,
		&pkg.Name,
		&pkg.Mode,
		&pkg.Price,
		&discountsRaw,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPackageByRoom - scan package: %v", ErrScanRow, err)
	}

	if pkg.Mode == domain.PackageModeHourly {
		pkg.PerHourDiscounts, err = parseDiscounts(discountsRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: GetPackageByRoom - parse discounts: %v", ErrScanRow, err)
		}
	}

	return &pkg, nil
}

// GetPriceRuleByRoom получает тарифное правило комнаты
// Отсутствие правила - нормальная ситуация: такая комната тарифицируется пакетом
func (r *Repository) GetPriceRuleByRoom(ctx context.Context, roomID int64) (*domain.PriceRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "room_id", "name").
		From("price_rules").
		Where(squirrel.Eq{"room_id": roomID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPriceRuleByRoom - build select query: %v", ErrBuildQuery, err)
	}

	var rule domain.PriceRule
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &rule.RoomID, &rule.Name)

	if err == sql.ErrNoRows {
		return nil, ErrPriceRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPriceRuleByRoom - scan rule: %v", ErrScanRow, err)
	}

	return &rule, nil
}

// GetTiersByRule получает тарифы правила, отсортированные по нижней границе
func (r *Repository) GetTiersByRule(ctx context.Context, ruleID int64) ([]domain.PriceTier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"price_rule_id",
		"min_slots",
		"max_slots",
		"total_price",
		"exception_id",
	).
		From("price_tiers").
		Where(squirrel.Eq{"price_rule_id": ruleID}).
		OrderBy("min_slots ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTiersByRule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTiersByRule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tiers := make([]domain.PriceTier, 0)

	for rows.Next() {
		var tier domain.PriceTier
		var maxSlots sql.NullInt64
		var exceptionID sql.NullInt64

		err := rows.Scan(
			&tier.ID,
			&tier.PriceRuleID,
			&tier.MinSlots,
			&maxSlots,
			&tier.TotalPrice,
			&exceptionID,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetTiersByRule - scan row: %v", ErrScanRow, err)
		}

		if maxSlots.Valid {
			v := int(maxSlots.Int64)
			tier.MaxSlots = &v
		}
		if exceptionID.Valid {
			tier.ExceptionID = &exceptionID.Int64
		}

		tiers = append(tiers, tier)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTiersByRule - rows error: %v", ErrScanRow, err)
	}

	return tiers, nil
}

// GetExceptionByID получает ценовое исключение по ID
func (r *Repository) GetExceptionByID(ctx context.Context, id int64) (*domain.PriceException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "start_date", "end_date", "price").
		From("price_exceptions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptionByID - build select query: %v", ErrBuildQuery, err)
	}

	var exc domain.PriceException
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&exc.ID,
		&exc.StartDate,
		&exc.EndDate,
		&exc.Price,
	)

	if err == sql.ErrNoRows {
		return nil, ErrExceptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptionByID - scan exception: %v", ErrScanRow, err)
	}

	return &exc, nil
}

// parseDiscounts разбирает JSONB-колонку per_hour_discounts
// Ключи в JSON строковые, домен работает с номерами часов
func parseDiscounts(raw []byte) (map[int]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var byKey map[string]float64
	if err := json.Unmarshal(raw, &byKey); err != nil {
		return nil, err
	}

	discounts := make(map[int]float64, len(byKey))
	for key, value := range byKey {
		hour, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid hour index %q", key)
		}
		discounts[hour] = value
	}

	return discounts, nil
}
