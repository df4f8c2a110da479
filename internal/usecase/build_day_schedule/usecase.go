package build_day_schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleReport/internal/domain"
)

// UseCase use case построения расписания дня из сырого фида
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute строит DaySchedule для одной даты.
// Смены и части записей других дат игнорируются; части, пересекающие полночь,
// усекаются до окна 00:00-24:00 целевой даты (см. clipToDay)
func (uc *UseCase) Execute(req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BuildDaySchedule: validation failed: %v", err)
		return nil, err
	}

	dayStart, err := time.ParseInLocation(domain.DateFormat, req.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q: %v", ErrInvalidInput, req.Date, err)
	}
	dayEnd := dayStart.AddDate(0, 0, 1)
	dayWindow := domain.TimeInterval{Start: dayStart, End: dayEnd}

	schedule := domain.NewDaySchedule(req.Date)
	anomalies := []domain.Anomaly{}

	// 1. Смены целевой даты
	for staffID, byDay := range req.Feed.ShiftsByStaffIDAndDay {
		for _, raw := range byDay[req.Date] {
			interval, err := parseLocalInterval(raw.StartAtLocal, raw.EndAtLocal)
			if err != nil {
				uc.logger.Warn("BuildDaySchedule: dropping shift staff=%s date=%s: %v", staffID, req.Date, err)
				anomalies = append(anomalies, domain.Anomaly{
					Kind:    domain.AnomalyInvalidInterval,
					StaffID: staffID,
					Date:    req.Date,
					Detail:  fmt.Sprintf("shift %s - %s", raw.StartAtLocal, raw.EndAtLocal),
				})
				continue
			}

			schedule.ShiftsByStaffID[staffID] = append(schedule.ShiftsByStaffID[staffID], domain.ShiftRecord{
				StaffID:    staffID,
				Date:       req.Date,
				Interval:   interval,
				LocationID: raw.LocationID.String(),
			})
		}
	}

	// 2. Части записей из собственного фида дня
	parts := collectParts(req.Feed, req.Date, req.Strategy, &anomalies)
	for _, part := range parts {
		uc.placePart(schedule, part, dayWindow, req.NextDayLoaded, &anomalies)
	}

	// 3. Хвосты записей предыдущего дня, перешедшие через полночь.
	// Аномалии построения предыдущего фида уже были зафиксированы при построении того дня
	if req.PrevFeed != nil {
		spillAnomalies := []domain.Anomaly{}
		for _, part := range collectParts(req.PrevFeed, req.Date, req.Strategy, &spillAnomalies) {
			if part.Interval.Start.Before(dayStart) && part.Interval.End.After(dayStart) {
				clipped := part.Interval.Intersect(dayWindow)
				part.Interval = clipped
				staffID := part.StaffID
				schedule.AppointmentPartsByStaffID[staffID] = append(schedule.AppointmentPartsByStaffID[staffID], part)
				uc.logger.Info("BuildDaySchedule: carried midnight spillover appointment=%s staff=%s interval=%s",
					part.AppointmentID, staffID, clipped)
			}
		}
	}

	schedule.SortChronologically()

	uc.logger.Info("BuildDaySchedule: date=%s staff_with_shifts=%d staff_with_appointments=%d anomalies=%d",
		req.Date, len(schedule.ShiftsByStaffID), len(schedule.AppointmentPartsByStaffID), len(anomalies))

	return &Response{Schedule: schedule, Anomalies: anomalies}, nil
}

// placePart усекает интервал части до окна дня и кладет её в расписание
func (uc *UseCase) placePart(
	schedule *domain.DaySchedule,
	part domain.AppointmentPart,
	dayWindow domain.TimeInterval,
	nextDayLoaded bool,
	anomalies *[]domain.Anomaly,
) {
	if !part.Interval.Overlaps(dayWindow) {
		// Часть целиком на другой дате - не наш день
		return
	}

	if part.Interval.End.After(dayWindow.End) {
		tail := domain.TimeInterval{Start: dayWindow.End, End: part.Interval.End}
		if nextDayLoaded {
			uc.logger.Info("placePart: appointment=%s staff=%s crosses midnight, tail %s attributed to next day",
				part.AppointmentID, part.StaffID, tail)
		} else {
			uc.logger.Warn("placePart: appointment=%s staff=%s crosses midnight, next day feed not loaded, dropping tail %s",
				part.AppointmentID, part.StaffID, tail)
			*anomalies = append(*anomalies, domain.Anomaly{
				Kind:     domain.AnomalyDroppedMidnightRemainder,
				StaffID:  part.StaffID,
				Date:     schedule.Date,
				Interval: tail,
				Minutes:  tail.Minutes(),
				Detail:   fmt.Sprintf("appointment %s", part.AppointmentID),
			})
		}
	}

	part.Interval = part.Interval.Intersect(dayWindow)
	schedule.AppointmentPartsByStaffID[part.StaffID] = append(schedule.AppointmentPartsByStaffID[part.StaffID], part)
}

func validateRequest(req *Request) error {
	if req.Feed == nil {
		return fmt.Errorf("%w: feed is required", ErrInvalidInput)
	}
	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !req.Strategy.IsValid() {
		return fmt.Errorf("%w: unknown part time strategy %q", ErrInvalidInput, req.Strategy)
	}

	// Обязательные верхнеуровневые ключи фида
	if req.Feed.Date == "" {
		return fmt.Errorf("%w: missing 'date'", ErrMalformedDayFeed)
	}
	if req.Feed.ShiftsByStaffIDAndDay == nil {
		return fmt.Errorf("%w: missing 'shiftsByStaffIdAndDay'", ErrMalformedDayFeed)
	}
	if req.Feed.Appointments == nil {
		return fmt.Errorf("%w: missing 'appointments'", ErrMalformedDayFeed)
	}

	return nil
}

// parseLocalInterval парсит пару локальных меток времени выгрузки в интервал
func parseLocalInterval(startAtLocal, endAtLocal string) (domain.TimeInterval, error) {
	start, err := time.ParseInLocation(domain.DateTimeFormat, startAtLocal, time.Local)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("bad start %q: %v", startAtLocal, err)
	}
	end, err := time.ParseInLocation(domain.DateTimeFormat, endAtLocal, time.Local)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("bad end %q: %v", endAtLocal, err)
	}
	return domain.NewTimeInterval(start, end)
}
