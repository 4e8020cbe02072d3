package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensroom/studio-booking-service/pkg/ptr"
)

func TestComputePriceSchedule_Hourly(t *testing.T) {
	pkg := &Package{
		Mode:             PackageModeHourly,
		Price:            100,
		PerHourDiscounts: map[int]float64{2: 30},
	}

	schedule, err := ComputePriceSchedule(pkg, 3)
	require.NoError(t, err)

	assert.Equal(t, []PriceScheduleEntry{
		{EndTime: 1, TotalPrice: 100},
		{EndTime: 2, TotalPrice: 170},
		{EndTime: 3, TotalPrice: 270},
	}, schedule)
}

func TestComputePriceSchedule_DiscountExceedingRateIsClamped(t *testing.T) {
	pkg := &Package{
		Mode:             PackageModeHourly,
		Price:            50,
		PerHourDiscounts: map[int]float64{1: 80},
	}

	schedule, err := ComputePriceSchedule(pkg, 1)
	require.NoError(t, err)

	// Час становится бесплатным, но вклад не бывает отрицательным
	assert.Equal(t, []PriceScheduleEntry{{EndTime: 1, TotalPrice: 0}}, schedule)
}

func TestComputePriceSchedule_Fixed(t *testing.T) {
	pkg := &Package{
		Mode:  PackageModeFixed,
		Price: 500,
	}

	schedule, err := ComputePriceSchedule(pkg, 4)
	require.NoError(t, err)
	require.Len(t, schedule, 4)

	for i, entry := range schedule {
		assert.Equal(t, i+1, entry.EndTime)
		assert.Equal(t, 500.0, entry.TotalPrice)
	}
}

// Накопленная цена почасового пакета монотонно не убывает,
// даже при скидках больше базовой ставки
func TestComputePriceSchedule_Monotonic(t *testing.T) {
	pkg := &Package{
		Mode:  PackageModeHourly,
		Price: 80,
		PerHourDiscounts: map[int]float64{
			1: 20,
			3: 100,
			4: 80,
			6: 79.5,
		},
	}

	schedule, err := ComputePriceSchedule(pkg, 8)
	require.NoError(t, err)
	require.Len(t, schedule, 8)

	for i := 1; i < len(schedule); i++ {
		assert.GreaterOrEqual(t, schedule[i].TotalPrice, schedule[i-1].TotalPrice,
			"price at hour %d must not decrease", schedule[i].EndTime)
	}
}

func TestComputePriceSchedule_HourWithoutDiscountUsesBaseRate(t *testing.T) {
	pkg := &Package{
		Mode:  PackageModeHourly,
		Price: 60,
		// Скидок нет вообще
	}

	schedule, err := ComputePriceSchedule(pkg, 2)
	require.NoError(t, err)

	assert.Equal(t, []PriceScheduleEntry{
		{EndTime: 1, TotalPrice: 60},
		{EndTime: 2, TotalPrice: 120},
	}, schedule)
}

func TestComputePriceSchedule_InvalidHours(t *testing.T) {
	pkg := &Package{Mode: PackageModeHourly, Price: 100}

	for _, hours := range []int{0, -1, -100} {
		_, err := ComputePriceSchedule(pkg, hours)
		assert.ErrorIs(t, err, ErrInvalidHours, "hours=%d", hours)
	}
}

func TestSelectTier(t *testing.T) {
	tiers := []PriceTier{
		{ID: 1, MinSlots: 1, MaxSlots: ptr.Ptr(4), TotalPrice: 200},
		{ID: 2, MinSlots: 5, MaxSlots: nil, TotalPrice: 350},
	}

	t.Run("upper bound of first tier", func(t *testing.T) {
		tier, err := SelectTier(tiers, 4)
		require.NoError(t, err)
		assert.Equal(t, 200.0, tier.TotalPrice)
	})

	t.Run("lower bound of open-ended tier", func(t *testing.T) {
		tier, err := SelectTier(tiers, 5)
		require.NoError(t, err)
		assert.Equal(t, 350.0, tier.TotalPrice)
	})

	t.Run("open-ended tier has no upper bound", func(t *testing.T) {
		tier, err := SelectTier(tiers, 500)
		require.NoError(t, err)
		assert.Equal(t, 350.0, tier.TotalPrice)
	})

	t.Run("zero slots matches nothing", func(t *testing.T) {
		_, err := SelectTier(tiers, 0)
		assert.ErrorIs(t, err, ErrNoMatchingTier)
	})

	t.Run("gap in tier configuration surfaces as error", func(t *testing.T) {
		gapped := []PriceTier{
			{MinSlots: 1, MaxSlots: ptr.Ptr(2), TotalPrice: 100},
			{MinSlots: 5, MaxSlots: nil, TotalPrice: 300},
		}
		_, err := SelectTier(gapped, 3)
		assert.ErrorIs(t, err, ErrNoMatchingTier)
	})
}

// Для каждого количества слотов внутри объединения диапазонов правила
// должен находиться ровно один тариф
func TestPriceTier_Coverage(t *testing.T) {
	tiers := []PriceTier{
		{MinSlots: 1, MaxSlots: ptr.Ptr(2), TotalPrice: 100},
		{MinSlots: 3, MaxSlots: ptr.Ptr(6), TotalPrice: 250},
		{MinSlots: 7, MaxSlots: nil, TotalPrice: 400},
	}

	for slots := 1; slots <= 24; slots++ {
		matched := 0
		for i := range tiers {
			if tiers[i].Matches(slots) {
				matched++
			}
		}
		assert.Equal(t, 1, matched, "slot count %d must match exactly one tier", slots)
	}
}

func TestPriceException_AppliesTo(t *testing.T) {
	exc := PriceException{
		StartDate: time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Price:     999,
	}

	assert.True(t, exc.AppliesTo(time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)))
	assert.True(t, exc.AppliesTo(time.Date(2026, 12, 28, 15, 30, 0, 0, time.UTC)))
	assert.True(t, exc.AppliesTo(time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, exc.AppliesTo(time.Date(2026, 12, 23, 0, 0, 0, 0, time.UTC)))
	assert.False(t, exc.AppliesTo(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
}
