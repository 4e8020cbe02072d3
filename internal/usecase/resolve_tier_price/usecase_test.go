package resolve_tier_price

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensroom/studio-booking-service/internal/domain"
	"github.com/lensroom/studio-booking-service/internal/infra/storage/pricing"
	"github.com/lensroom/studio-booking-service/pkg/ptr"
)

type fakePricingRepo struct {
	rule      *domain.PriceRule
	tiers     []domain.PriceTier
	exception *domain.PriceException

	ruleErr      error
	tiersErr     error
	exceptionErr error
}

func (f *fakePricingRepo) GetPriceRuleByRoom(ctx context.Context, roomID int64) (*domain.PriceRule, error) {
	if f.ruleErr != nil {
		return nil, f.ruleErr
	}
	return f.rule, nil
}

func (f *fakePricingRepo) GetTiersByRule(ctx context.Context, ruleID int64) ([]domain.PriceTier, error) {
	if f.tiersErr != nil {
		return nil, f.tiersErr
	}
	return f.tiers, nil
}

func (f *fakePricingRepo) GetExceptionByID(ctx context.Context, id int64) (*domain.PriceException, error) {
	if f.exceptionErr != nil {
		return nil, f.exceptionErr
	}
	return f.exception, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func twoTierRule() *fakePricingRepo {
	return &fakePricingRepo{
		rule: &domain.PriceRule{ID: 5, RoomID: 2, Name: "Base"},
		tiers: []domain.PriceTier{
			{ID: 1, PriceRuleID: 5, MinSlots: 1, MaxSlots: ptr.Ptr(4), TotalPrice: 200},
			{ID: 2, PriceRuleID: 5, MinSlots: 5, MaxSlots: nil, TotalPrice: 350},
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	t.Run("upper bound of bounded tier", func(t *testing.T) {
		uc := NewUseCase(twoTierRule(), nopLogger{})

		resp, err := uc.Execute(ctx, &Request{RoomID: 2, SlotCount: 4, Date: date})
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.TierID)
		assert.Equal(t, 200.0, resp.TotalPrice)
		assert.False(t, resp.ExceptionApplied)
	})

	t.Run("open-ended tier picks up the rest", func(t *testing.T) {
		uc := NewUseCase(twoTierRule(), nopLogger{})

		resp, err := uc.Execute(ctx, &Request{RoomID: 2, SlotCount: 5, Date: date})
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.TierID)
		assert.Equal(t, 350.0, resp.TotalPrice)
	})

	t.Run("no tier covers slot count", func(t *testing.T) {
		repo := &fakePricingRepo{
			rule: &domain.PriceRule{ID: 5},
			tiers: []domain.PriceTier{
				{ID: 1, MinSlots: 2, MaxSlots: ptr.Ptr(4), TotalPrice: 200},
			},
		}
		uc := NewUseCase(repo, nopLogger{})

		_, err := uc.Execute(ctx, &Request{RoomID: 2, SlotCount: 1, Date: date})
		assert.ErrorIs(t, err, ErrNoMatchingTier)
	})

	t.Run("exception overrides price inside its date range", func(t *testing.T) {
		repo := twoTierRule()
		repo.tiers[0].ExceptionID = ptr.Ptr(int64(7))
		repo.exception = &domain.PriceException{
			ID:        7,
			StartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			Price:     150,
		}
		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{RoomID: 2, SlotCount: 3, Date: date})
		require.NoError(t, err)
		assert.Equal(t, 150.0, resp.TotalPrice)
		assert.True(t, resp.ExceptionApplied)
	})

	t.Run("exception outside its date range is ignored", func(t *testing.T) {
		repo := twoTierRule()
		repo.tiers[0].ExceptionID = ptr.Ptr(int64(7))
		repo.exception = &domain.PriceException{
			ID:        7,
			StartDate: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 9, 22, 0, 0, 0, 0, time.UTC),
			Price:     150,
		}
		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{RoomID: 2, SlotCount: 3, Date: date})
		require.NoError(t, err)
		assert.Equal(t, 200.0, resp.TotalPrice)
		assert.False(t, resp.ExceptionApplied)
	})

	t.Run("rule not found", func(t *testing.T) {
		repo := &fakePricingRepo{ruleErr: pricing.ErrPriceRuleNotFound}
		uc := NewUseCase(repo, nopLogger{})

		_, err := uc.Execute(ctx, &Request{RoomID: 99, SlotCount: 2, Date: date})
		assert.ErrorIs(t, err, ErrPriceRuleNotFound)
	})

	t.Run("exception lookup failure is internal", func(t *testing.T) {
		repo := twoTierRule()
		repo.tiers[0].ExceptionID = ptr.Ptr(int64(7))
		repo.exceptionErr = pricing.ErrExecQuery
		uc := NewUseCase(repo, nopLogger{})

		_, err := uc.Execute(ctx, &Request{RoomID: 2, SlotCount: 3, Date: date})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewUseCase(twoTierRule(), nopLogger{})

		_, err := uc.Execute(ctx, &Request{RoomID: 0, SlotCount: 2, Date: date})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(ctx, &Request{RoomID: 2, SlotCount: 0, Date: date})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
