package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensroom/studio-booking-service/internal/domain"
	bookingRepo "github.com/lensroom/studio-booking-service/internal/infra/storage/booking"
	"github.com/lensroom/studio-booking-service/internal/integrations/studioservice"
	"github.com/lensroom/studio-booking-service/internal/service/bookings/models"
	"github.com/lensroom/studio-booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	booking  *domain.Booking
	bookings []*domain.Booking

	cancelledID     int64
	cancelledStatus domain.BookingStatus
	cancelledReason string

	getErr    error
	cancelErr error
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) GetByStudioWithFilter(ctx context.Context, filter domain.StudioBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledID = id
	f.cancelledStatus = status
	f.cancelledReason = reason
	return nil
}

type fakeStudioClient struct {
	studio *studioservice.Studio
	err    error
}

func (f *fakeStudioClient) GetStudio(ctx context.Context, studioID int64) (*studioservice.Studio, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.studio, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:              42,
		UserID:          7,
		StudioID:        1,
		RoomID:          2,
		BookingDate:     time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 120,
		Status:          domain.StatusConfirmed,
		RoomName:        "Main Hall",
		TotalPrice:      200,
		PricingMode:     domain.PricingModeTiered,
	}
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	studio := &studioservice.Studio{ID: 1, OwnerID: 100}

	t.Run("owner of the booking", func(t *testing.T) {
		svc := NewService(&fakeBookingRepo{booking: confirmedBooking()}, &fakeStudioClient{studio: studio}, nopLogger{})

		resp, err := svc.GetByID(ctx, 42, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, "2026-09-10", resp.BookingDate)
	})

	t.Run("studio owner", func(t *testing.T) {
		svc := NewService(&fakeBookingRepo{booking: confirmedBooking()}, &fakeStudioClient{studio: studio}, nopLogger{})

		_, err := svc.GetByID(ctx, 42, 100)
		require.NoError(t, err)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		svc := NewService(&fakeBookingRepo{booking: confirmedBooking()}, &fakeStudioClient{studio: studio}, nopLogger{})

		_, err := svc.GetByID(ctx, 42, 999)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, &fakeStudioClient{studio: studio}, nopLogger{})

		_, err := svc.GetByID(ctx, 42, 7)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()
	studio := &studioservice.Studio{ID: 1, OwnerID: 100}

	t.Run("user cancels own booking", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: confirmedBooking()}
		svc := NewService(repo, &fakeStudioClient{studio: studio}, nopLogger{})

		err := svc.Cancel(ctx, 42, &models.CancelBookingRequest{UserID: 7, CancellationReason: "plans changed"})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledByUser, repo.cancelledStatus)
		assert.Equal(t, "plans changed", repo.cancelledReason)
	})

	t.Run("studio owner cancels booking", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: confirmedBooking()}
		svc := NewService(repo, &fakeStudioClient{studio: studio}, nopLogger{})

		err := svc.Cancel(ctx, 42, &models.CancelBookingRequest{UserID: 100, CancellationReason: "maintenance"})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledByStudio, repo.cancelledStatus)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: confirmedBooking()}
		svc := NewService(repo, &fakeStudioClient{studio: studio}, nopLogger{})

		err := svc.Cancel(ctx, 42, &models.CancelBookingRequest{UserID: 999})
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Zero(t, repo.cancelledID)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		booking := confirmedBooking()
		booking.Status = domain.StatusCompleted
		svc := NewService(&fakeBookingRepo{booking: booking}, &fakeStudioClient{studio: studio}, nopLogger{})

		err := svc.Cancel(ctx, 42, &models.CancelBookingRequest{UserID: 7})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestService_GetStudioBookings(t *testing.T) {
	ctx := context.Background()
	studio := &studioservice.Studio{ID: 1, OwnerID: 100}

	t.Run("owner gets bookings", func(t *testing.T) {
		repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking()}}
		svc := NewService(repo, &fakeStudioClient{studio: studio}, nopLogger{})

		resp, err := svc.GetStudioBookings(ctx, &models.GetStudioBookingsRequest{UserID: 100, StudioID: 1})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "Main Hall", resp.Bookings[0].RoomName)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		svc := NewService(&fakeBookingRepo{}, &fakeStudioClient{studio: studio}, nopLogger{})

		_, err := svc.GetStudioBookings(ctx, &models.GetStudioBookingsRequest{UserID: 7, StudioID: 1})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("invalid status in filter", func(t *testing.T) {
		svc := NewService(&fakeBookingRepo{}, &fakeStudioClient{studio: studio}, nopLogger{})

		_, err := svc.GetStudioBookings(ctx, &models.GetStudioBookingsRequest{
			UserID:   100,
			StudioID: 1,
			Status:   ptr.Ptr("unknown"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetUserBookings(t *testing.T) {
	ctx := context.Background()

	svc := NewService(&fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking()}}, &fakeStudioClient{}, nopLogger{})

	resp, err := svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{UserID: 7, Status: ptr.Ptr("confirmed")})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	_, err = svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{UserID: 7, Status: ptr.Ptr("bogus")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
