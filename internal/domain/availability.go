package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInterval возвращается при некорректных границах дня или брони
	ErrInvalidInterval = errors.New("domain: invalid time interval")

	// ErrUnorderedReservations возвращается, когда существующие брони
	// не отсортированы по началу или пересекаются между собой
	ErrUnorderedReservations = errors.New("domain: reservations must be sorted and non-overlapping")
)

// TimeWindow свободное окно внутри рабочего дня, в минутах с начала суток
// Start строго меньше End; окно никогда не бывает нулевой длины
type TimeWindow struct {
	Start int
	End   int
}

// DurationMinutes длительность окна в минутах
func (w TimeWindow) DurationMinutes() int {
	return w.End - w.Start
}

// Contains возвращает true, если интервал [start, end) целиком лежит в окне
func (w TimeWindow) Contains(start, end int) bool {
	return start >= w.Start && end <= w.End
}

// Reservation занятый интервал существующего бронирования, в минутах с начала суток
type Reservation struct {
	Start int
	End   int
}

// ComputeFreeWindows вычисляет свободные окна рабочего дня [dayStart, dayEnd)
// по списку существующих броней, отсортированных по началу и непересекающихся.
//
// Алгоритм - линейное слияние с курсором: для каждой брони, если её начало
// правее курсора, между ними есть свободное окно; курсор сдвигается на конец
// брони. Хвост дня после последней брони тоже становится окном. Брони,
// касающиеся границ дня, нулевых окон не порождают (строгие сравнения).
//
// Несортированный или пересекающийся вход отклоняется с ошибкой: молчаливый
// расчет по такому входу давал бы заниженную или завышенную доступность
func ComputeFreeWindows(dayStart, dayEnd int, reservations []Reservation) ([]TimeWindow, error) {
	if dayStart < 0 || dayEnd > MinutesPerDay || dayStart >= dayEnd {
		return nil, fmt.Errorf("%w: day bounds [%d, %d)", ErrInvalidInterval, dayStart, dayEnd)
	}

	if err := validateReservations(reservations); err != nil {
		return nil, err
	}

	windows := make([]TimeWindow, 0, len(reservations)+1)
	current := dayStart

	for _, r := range reservations {
		if r.Start > current {
			windows = append(windows, TimeWindow{Start: current, End: r.Start})
		}
		if r.End > current {
			current = r.End
		}
	}

	if current < dayEnd {
		windows = append(windows, TimeWindow{Start: current, End: dayEnd})
	}

	return windows, nil
}

// validateReservations проверяет предусловие: каждая бронь корректна,
// список отсортирован по началу и брони не пересекаются
func validateReservations(reservations []Reservation) error {
	for i, r := range reservations {
		if r.Start < 0 || r.End > MinutesPerDay || r.Start >= r.End {
			return fmt.Errorf("%w: reservation [%d, %d)", ErrInvalidInterval, r.Start, r.End)
		}
		if i > 0 && reservations[i-1].End > r.Start {
			return fmt.Errorf("%w: [%d, %d) overlaps [%d, %d)",
				ErrUnorderedReservations,
				reservations[i-1].Start, reservations[i-1].End, r.Start, r.End)
		}
	}
	return nil
}

// FilterPastWindows отбрасывает окна, начинающиеся раньше nowMinute.
// Окно, внутри которого находится текущий момент, отбрасывается целиком,
// а не усекается: клиенту предлагаются только окна, начинающиеся не раньше
// текущей минуты. Применяется только когда запрошенная дата - сегодня
func FilterPastWindows(windows []TimeWindow, nowMinute int) []TimeWindow {
	filtered := make([]TimeWindow, 0, len(windows))
	for _, w := range windows {
		if w.End > nowMinute && w.Start >= nowMinute {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
