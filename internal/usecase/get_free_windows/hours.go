package get_free_windows

import (
	"time"

	"github.com/lensroom/studio-booking-service/internal/integrations/studioservice"
	"github.com/lensroom/studio-booking-service/pkg/types"
)

// getWorkingHoursForDay возвращает расписание работы студии на указанный день недели
func getWorkingHoursForDay(studio *studioservice.Studio, date time.Time) studioservice.DaySchedule {
	weekday := date.Weekday()

	switch weekday {
	case time.Monday:
		return studio.WorkingHours.Monday
	case time.Tuesday:
		return studio.WorkingHours.Tuesday
	case time.Wednesday:
		return studio.WorkingHours.Wednesday
	case time.Thursday:
		return studio.WorkingHours.Thursday
	case time.Friday:
		return studio.WorkingHours.Friday
	case time.Saturday:
		return studio.WorkingHours.Saturday
	case time.Sunday:
		return studio.WorkingHours.Sunday
	default:
		return studioservice.DaySchedule{IsOpen: false}
	}
}

// operatingBounds переводит расписание дня в границы рабочего дня
// в минутах с начала суток. Второе значение false - студия закрыта
func operatingBounds(hours studioservice.DaySchedule) (dayStart, dayEnd int, open bool, err error) {
	if !hours.IsOpen || hours.OpenTime == nil || hours.CloseTime == nil {
		return 0, 0, false, nil
	}

	openTime, err := types.NewTimeStringFromString(*hours.OpenTime)
	if err != nil {
		return 0, 0, false, err
	}

	closeTime, err := types.NewTimeStringFromString(*hours.CloseTime)
	if err != nil {
		return 0, 0, false, err
	}

	dayStart, err = openTime.Minutes()
	if err != nil {
		return 0, 0, false, err
	}

	dayEnd, err = closeTime.Minutes()
	if err != nil {
		return 0, 0, false, err
	}

	return dayStart, dayEnd, true, nil
}

// minutesOfDay возвращает количество минут с начала суток для момента t
func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
