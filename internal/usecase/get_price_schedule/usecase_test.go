package get_price_schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensroom/studio-booking-service/internal/domain"
	"github.com/lensroom/studio-booking-service/internal/infra/storage/pricing"
)

type fakePricingRepo struct {
	pkg *domain.Package
	err error
}

func (f *fakePricingRepo) GetPackageByRoom(ctx context.Context, roomID int64) (*domain.Package, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pkg, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("hourly package accumulates with discounts", func(t *testing.T) {
		repo := &fakePricingRepo{pkg: &domain.Package{
			ID:               10,
			RoomID:           2,
			Name:             "Standard",
			Mode:             domain.PackageModeHourly,
			Price:            100,
			PerHourDiscounts: map[int]float64{2: 30},
		}}
		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{RoomID: 2, Hours: 3})
		require.NoError(t, err)

		require.Len(t, resp.Entries, 3)
		assert.Equal(t, Entry{EndHour: 1, TotalPrice: 100}, resp.Entries[0])
		assert.Equal(t, Entry{EndHour: 2, TotalPrice: 170}, resp.Entries[1])
		assert.Equal(t, Entry{EndHour: 3, TotalPrice: 270}, resp.Entries[2])
		assert.Equal(t, int64(10), resp.PackageID)
		assert.Equal(t, domain.PackageModeHourly, resp.Mode)
	})

	t.Run("fixed package is flat for any duration", func(t *testing.T) {
		repo := &fakePricingRepo{pkg: &domain.Package{
			ID:    11,
			Name:  "Day Pass",
			Mode:  domain.PackageModeFixed,
			Price: 500,
		}}
		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{RoomID: 2, Hours: 4})
		require.NoError(t, err)

		require.Len(t, resp.Entries, 4)
		for _, entry := range resp.Entries {
			assert.Equal(t, 500.0, entry.TotalPrice)
		}
	})

	t.Run("package not found", func(t *testing.T) {
		repo := &fakePricingRepo{err: pricing.ErrPackageNotFound}
		uc := NewUseCase(repo, nopLogger{})

		_, err := uc.Execute(ctx, &Request{RoomID: 99, Hours: 2})
		assert.ErrorIs(t, err, ErrPackageNotFound)
	})

	t.Run("storage failure surfaces as internal error", func(t *testing.T) {
		repo := &fakePricingRepo{err: pricing.ErrExecQuery}
		uc := NewUseCase(repo, nopLogger{})

		_, err := uc.Execute(ctx, &Request{RoomID: 2, Hours: 2})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewUseCase(&fakePricingRepo{}, nopLogger{})

		_, err := uc.Execute(ctx, &Request{RoomID: 0, Hours: 2})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(ctx, &Request{RoomID: 2, Hours: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(ctx, &Request{RoomID: 2, Hours: 25})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
