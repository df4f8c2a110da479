package domain

import (
	"fmt"
	"sort"
	"time"
)

// TimeInterval represents a half-open time range [Start, End) within a single day
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval creates a validated interval
// Возвращает ErrInvalidInterval, если end <= start (нулевые и перевёрнутые интервалы)
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if !end.After(start) {
		return TimeInterval{}, fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval,
			start.Format(TimeFormat), end.Format(TimeFormat))
	}
	return TimeInterval{Start: start, End: end}, nil
}

// IsZero returns true if the interval is uninitialized
func (i TimeInterval) IsZero() bool {
	return i.Start.IsZero() && i.End.IsZero()
}

// Minutes returns the interval duration in whole minutes
func (i TimeInterval) Minutes() int {
	return int(i.End.Sub(i.Start) / time.Minute)
}

// Overlaps returns true if the two intervals actually intersect.
// Граничащие интервалы (конец одного совпадает с началом другого) НЕ считаются пересекающимися,
// поэтому используем строгие неравенства
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Intersect returns the overlapping portion of two intervals, or a zero value
// when they do not overlap
func (i TimeInterval) Intersect(other TimeInterval) TimeInterval {
	if !i.Overlaps(other) {
		return TimeInterval{}
	}

	start := i.Start
	if other.Start.After(start) {
		start = other.Start
	}

	end := i.End
	if other.End.Before(end) {
		end = other.End
	}

	return TimeInterval{Start: start, End: end}
}

// String returns the interval as "HH:MM-HH:MM"
func (i TimeInterval) String() string {
	return fmt.Sprintf("%s-%s", i.Start.Format(TimeFormat), i.End.Format(TimeFormat))
}

// MergeIntervals объединяет пересекающиеся и примыкающие интервалы в минимальное покрывающее множество
// Результат отсортирован по началу, интервалы попарно не пересекаются и не примыкают друг к другу.
// Повторный вызов на результате ничего не меняет (идемпотентность)
func MergeIntervals(intervals []TimeInterval) []TimeInterval {
	if len(intervals) == 0 {
		return []TimeInterval{}
	}

	sorted := make([]TimeInterval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(a, b int) bool {
		return sorted[a].Start.Before(sorted[b].Start)
	})

	merged := make([]TimeInterval, 0, len(sorted))
	current := sorted[0]

	for _, next := range sorted[1:] {
		// Примыкающий (next.Start == current.End) тоже поглощается
		if !next.Start.After(current.End) {
			if next.End.After(current.End) {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}

	return append(merged, current)
}

// SubtractIntervals возвращает части base, не покрытые ни одним интервалом из cuts.
// Cuts сначала объединяются (MergeIntervals), чтобы пересекающиеся вырезы не вычитались дважды.
// Вырез вне base игнорируется, частично пересекающий - усекает, полностью покрывающий - даёт пустой результат
func SubtractIntervals(base TimeInterval, cuts []TimeInterval) []TimeInterval {
	remaining := []TimeInterval{}
	cursor := base.Start

	for _, cut := range MergeIntervals(cuts) {
		if !cut.End.After(cursor) {
			// Вырез целиком до курсора - не влияет
			continue
		}
		if !cut.Start.Before(base.End) {
			// Вырез начинается после конца base - дальше только более поздние вырезы
			break
		}
		if cut.Start.After(cursor) {
			remaining = append(remaining, TimeInterval{Start: cursor, End: cut.Start})
		}
		if cut.End.After(cursor) {
			cursor = cut.End
		}
	}

	if cursor.Before(base.End) {
		remaining = append(remaining, TimeInterval{Start: cursor, End: base.End})
	}

	return remaining
}

// SumMinutes returns the total duration of a list of intervals in minutes
func SumMinutes(intervals []TimeInterval) int {
	total := 0
	for _, i := range intervals {
		total += i.Minutes()
	}
	return total
}
