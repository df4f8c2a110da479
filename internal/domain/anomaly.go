package domain

import "fmt"

// AnomalyKind classifies a non-fatal data inconsistency
type AnomalyKind string

const (
	// AnomalyInvalidInterval - интервал с end <= start, отброшен
	AnomalyInvalidInterval AnomalyKind = "invalid_interval"

	// AnomalyMissingShift - у сотрудника есть записи, но нет ни одной смены в этот день
	AnomalyMissingShift AnomalyKind = "missing_shift"

	// AnomalyOutOfShiftBooking - время записи выходит за пределы всех смен сотрудника
	AnomalyOutOfShiftBooking AnomalyKind = "out_of_shift_booking"

	// AnomalyUnknownStaff - staffId отсутствует в справочнике сотрудников
	AnomalyUnknownStaff AnomalyKind = "unknown_staff"

	// AnomalyDroppedMidnightRemainder - хвост записи за полночь отброшен,
	// потому что фид следующего дня не загружен
	AnomalyDroppedMidnightRemainder AnomalyKind = "dropped_midnight_remainder"
)

// Anomaly is a non-fatal data inconsistency surfaced in the result
// rather than raised as a fatal error
type Anomaly struct {
	Kind     AnomalyKind
	StaffID  string
	Date     string
	Interval TimeInterval // проблемный интервал, нулевой если неприменимо
	Minutes  int          // затронутые минуты, 0 если неприменимо
	Detail   string
}

// String returns a single-line description for logs and reports
func (a Anomaly) String() string {
	msg := fmt.Sprintf("[%s] staff=%s date=%s", a.Kind, a.StaffID, a.Date)
	if !a.Interval.IsZero() {
		msg += fmt.Sprintf(" interval=%s", a.Interval)
	}
	if a.Minutes > 0 {
		msg += fmt.Sprintf(" minutes=%d", a.Minutes)
	}
	if a.Detail != "" {
		msg += fmt.Sprintf(" (%s)", a.Detail)
	}
	return msg
}
