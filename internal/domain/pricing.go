package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidHours возвращается, когда запрошено меньше одного часа
	ErrInvalidHours = errors.New("domain: hours must be at least 1")

	// ErrNoMatchingTier возвращается, когда ни один тариф правила не покрывает
	// запрошенное количество слотов. Это ошибка конфигурации правила:
	// цена в таком случае никогда не подставляется по умолчанию
	ErrNoMatchingTier = errors.New("domain: no price tier matches slot count")
)

// PackageMode режим тарификации пакета
type PackageMode string

const (
	PackageModeFixed  PackageMode = "fixed"  // вся длительность стоит фиксированную цену
	PackageModeHourly PackageMode = "hourly" // цена накапливается по часам со скидками
)

// Package пакетное ценовое предложение комнаты.
// Режим разрешается один раз при чтении из хранилища; внутри расчета
// динамических проверок типа нет
type Package struct {
	ID     int64
	RoomID int64
	Name   string
	Mode   PackageMode

	// Price для fixed-пакета - итоговая цена всей брони,
	// для hourly-пакета - базовая ставка за час
	Price float64

	// PerHourDiscounts скидка на конкретный час брони (ключ - номер часа, с 1).
	// Часы без записи идут по базовой ставке. Только для hourly-режима
	PerHourDiscounts map[int]float64
}

// PriceScheduleEntry накопительная цена брони длиной EndTime часов
type PriceScheduleEntry struct {
	EndTime    int     // номер часа, с 1
	TotalPrice float64 // суммарная цена за EndTime часов
}

// ComputePriceSchedule строит ценовую шкалу пакета: по одной записи
// на каждый час от 1 до hours.
//
// Fixed-пакет: каждая запись равна цене пакета, цена не зависит от длительности.
//
// Hourly-пакет: цена накапливается по часам, вклад часа равен
// max(ставка - скидка часа, 0). Скидка больше ставки делает час бесплатным,
// но никогда не уменьшает накопленную сумму: итоговая шкала монотонно
// не убывает, на это полагается выбор длительности на клиенте
func ComputePriceSchedule(pkg *Package, hours int) ([]PriceScheduleEntry, error) {
	if hours < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHours, hours)
	}

	schedule := make([]PriceScheduleEntry, 0, hours)

	if pkg.Mode == PackageModeFixed {
		for hour := 1; hour <= hours; hour++ {
			schedule = append(schedule, PriceScheduleEntry{EndTime: hour, TotalPrice: pkg.Price})
		}
		return schedule, nil
	}

	total := 0.0
	for hour := 1; hour <= hours; hour++ {
		contribution := pkg.Price - pkg.PerHourDiscounts[hour]
		if contribution < 0 {
			contribution = 0
		}
		total += contribution
		schedule = append(schedule, PriceScheduleEntry{EndTime: hour, TotalPrice: total})
	}

	return schedule, nil
}

// PriceRule правило тарифной тарификации комнаты.
// Одно правило владеет набором тарифов, разбивающих ось количества слотов
type PriceRule struct {
	ID     int64
	RoomID int64
	Name   string
}

// PriceTier тариф правила: диапазон количества слотов и итоговая цена.
// Справочные данные, редактируются админкой; движок их только читает
type PriceTier struct {
	ID          int64
	PriceRuleID int64
	MinSlots    int
	MaxSlots    *int // nil = открытый последний тариф без верхней границы
	TotalPrice  float64
	ExceptionID *int64 // опциональная ссылка на ценовое исключение
}

// Matches возвращает true, если тариф покрывает slotCount
func (t *PriceTier) Matches(slotCount int) bool {
	if slotCount < t.MinSlots {
		return false
	}
	return t.MaxSlots == nil || slotCount <= *t.MaxSlots
}

// SelectTier находит тариф, покрывающий slotCount.
// Тарифы правила обязаны разбивать ось слотов без пропусков и пересечений;
// отсутствие подходящего тарифа - ошибка конфигурации, а не повод угадывать цену
func SelectTier(tiers []PriceTier, slotCount int) (*PriceTier, error) {
	for i := range tiers {
		if tiers[i].Matches(slotCount) {
			return &tiers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d slots", ErrNoMatchingTier, slotCount)
}

// PriceException датозависимое переопределение цены тарифа
// (праздничные и промо-цены)
type PriceException struct {
	ID        int64
	StartDate time.Time
	EndDate   time.Time
	Price     float64
}

// AppliesTo возвращает true, если исключение действует на указанную дату
// (границы включительно, сравниваются только даты)
func (e *PriceException) AppliesTo(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(e.StartDate.Year(), e.StartDate.Month(), e.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(e.EndDate.Year(), e.EndDate.Month(), e.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(start) && !d.After(end)
}
