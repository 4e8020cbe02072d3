package get_free_windows

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensroom/studio-booking-service/internal/domain"
	"github.com/lensroom/studio-booking-service/internal/integrations/studioservice"
	"github.com/lensroom/studio-booking-service/pkg/ptr"
	"github.com/lensroom/studio-booking-service/pkg/types"
)

type fakeBookingRepo struct {
	reservations []domain.Reservation
	err          error
}

func (f *fakeBookingRepo) GetReservationsByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

type fakeStudioClient struct {
	studio    *studioservice.Studio
	room      *studioservice.Room
	studioErr error
	roomErr   error
}

func (f *fakeStudioClient) GetStudio(ctx context.Context, studioID int64) (*studioservice.Studio, error) {
	if f.studioErr != nil {
		return nil, f.studioErr
	}
	return f.studio, nil
}

func (f *fakeStudioClient) GetRoom(ctx context.Context, studioID, roomID int64) (*studioservice.Room, error) {
	if f.roomErr != nil {
		return nil, f.roomErr
	}
	return f.room, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// allDaySchedule студия работает круглосуточно всю неделю
func allDaySchedule() studioservice.WeekSchedule {
	day := studioservice.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("00:00"),
		CloseTime: ptr.Ptr("23:59"),
	}
	return studioservice.WeekSchedule{
		Monday: day, Tuesday: day, Wednesday: day, Thursday: day,
		Friday: day, Saturday: day, Sunday: day,
	}
}

func newTestUseCase(repo *fakeBookingRepo, client *fakeStudioClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, client, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	studio := &studioservice.Studio{ID: 1, Name: "Lensroom", WorkingHours: allDaySchedule()}
	room := &studioservice.Room{ID: 2, StudioID: 1, Name: "Main Hall"}

	// Завтрашняя дата относительно фиксированного "сейчас"
	now := time.Date(2026, 9, 1, 10, 50, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	t.Run("future date returns all gaps between reservations", func(t *testing.T) {
		repo := &fakeBookingRepo{reservations: []domain.Reservation{
			{Start: 540, End: 600},
			{Start: 720, End: 780},
		}}
		uc := newTestUseCase(repo, &fakeStudioClient{studio: studio, room: room}, now)

		resp, err := uc.Execute(ctx, &Request{StudioID: 1, RoomID: 2, Date: tomorrow})
		require.NoError(t, err)

		require.Len(t, resp.Windows, 3)
		assert.Equal(t, types.TimeString("00:00"), resp.Windows[0].StartTime)
		assert.Equal(t, types.TimeString("09:00"), resp.Windows[0].EndTime)
		assert.Equal(t, types.TimeString("10:00"), resp.Windows[1].StartTime)
		assert.Equal(t, types.TimeString("12:00"), resp.Windows[1].EndTime)
		assert.Equal(t, types.TimeString("13:00"), resp.Windows[2].StartTime)
		assert.Equal(t, 120, resp.Windows[1].DurationMinutes)
	})

	t.Run("today drops windows starting before now", func(t *testing.T) {
		repo := &fakeBookingRepo{reservations: []domain.Reservation{
			{Start: 540, End: 600},
			{Start: 720, End: 780},
		}}
		// Сейчас 10:50 (650 минут): окно 10:00-12:00 начинается раньше и отбрасывается целиком
		uc := newTestUseCase(repo, &fakeStudioClient{studio: studio, room: room}, now)

		today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		resp, err := uc.Execute(ctx, &Request{StudioID: 1, RoomID: 2, Date: today})
		require.NoError(t, err)

		require.Len(t, resp.Windows, 1)
		assert.Equal(t, types.TimeString("13:00"), resp.Windows[0].StartTime)
	})

	t.Run("no reservations - whole working day is one window", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeStudioClient{studio: studio, room: room}, now)

		resp, err := uc.Execute(ctx, &Request{StudioID: 1, RoomID: 2, Date: tomorrow})
		require.NoError(t, err)

		require.Len(t, resp.Windows, 1)
		assert.Equal(t, types.TimeString("00:00"), resp.Windows[0].StartTime)
		assert.Equal(t, types.TimeString("23:59"), resp.Windows[0].EndTime)
	})

	t.Run("closed day returns empty windows", func(t *testing.T) {
		closed := &studioservice.Studio{ID: 1, WorkingHours: studioservice.WeekSchedule{}}
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeStudioClient{studio: closed, room: room}, now)

		resp, err := uc.Execute(ctx, &Request{StudioID: 1, RoomID: 2, Date: tomorrow})
		require.NoError(t, err)
		assert.Empty(t, resp.Windows)
	})

	t.Run("identical requests give identical results", func(t *testing.T) {
		repo := &fakeBookingRepo{reservations: []domain.Reservation{{Start: 600, End: 660}}}
		uc := newTestUseCase(repo, &fakeStudioClient{studio: studio, room: room}, now)

		req := &Request{StudioID: 1, RoomID: 2, Date: tomorrow}
		first, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		second, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, first.Windows, second.Windows)
	})
}

func TestUseCase_Execute_Errors(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	studio := &studioservice.Studio{ID: 1, WorkingHours: allDaySchedule()}
	room := &studioservice.Room{ID: 2}

	t.Run("invalid ids", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeStudioClient{studio: studio, room: room}, now)

		_, err := uc.Execute(ctx, &Request{StudioID: 0, RoomID: 2, Date: tomorrow})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(ctx, &Request{StudioID: 1, RoomID: -1, Date: tomorrow})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("date in the past", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeStudioClient{studio: studio, room: room}, now)

		yesterday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
		_, err := uc.Execute(ctx, &Request{StudioID: 1, RoomID: 2, Date: yesterday})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("studio not found", func(t *testing.T) {
		client := &fakeStudioClient{studioErr: studioservice.ErrStudioNotFound}
		uc := newTestUseCase(&fakeBookingRepo{}, client, now)

		_, err := uc.Execute(ctx, &Request{StudioID: 99, RoomID: 2, Date: tomorrow})
		assert.ErrorIs(t, err, ErrStudioNotFound)
	})

	t.Run("room not found", func(t *testing.T) {
		client := &fakeStudioClient{studio: studio, roomErr: studioservice.ErrRoomNotFound}
		uc := newTestUseCase(&fakeBookingRepo{}, client, now)

		_, err := uc.Execute(ctx, &Request{StudioID: 1, RoomID: 99, Date: tomorrow})
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("corrupted reservations surface as internal error", func(t *testing.T) {
		repo := &fakeBookingRepo{reservations: []domain.Reservation{
			{Start: 720, End: 780},
			{Start: 540, End: 600},
		}}
		uc := newTestUseCase(repo, &fakeStudioClient{studio: studio, room: room}, now)

		_, err := uc.Execute(ctx, &Request{StudioID: 1, RoomID: 2, Date: tomorrow})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
