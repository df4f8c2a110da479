package compute_open_time

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleReport/internal/domain"
)

// UseCase use case расчёта свободного времени сотрудника за день
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute вычисляет свободные интервалы и минуты для одного сотрудника.
//
// Алгоритм:
//  1. Смены сотрудника объединяются в покрытие рабочего дня
//  2. Части записей объединяются (двойная бронь вычитается один раз)
//  3. Из каждой смены вычитаются пересекающие её части
//  4. Занятое время - дополнение свободного внутри смен
//
// Отсутствие смен у сотрудника - не ошибка: без записей это просто нерабочий
// день (нулевой результат), с записями - аномалия MissingShift
func (uc *UseCase) Execute(req *Request) (*Response, error) {
	if req == nil || req.Schedule == nil {
		return nil, fmt.Errorf("%w: schedule is required", ErrInvalidInput)
	}
	if req.StaffID == "" {
		return nil, fmt.Errorf("%w: staffID is required", ErrInvalidInput)
	}

	date := req.Schedule.Date
	resp := &Response{
		StaffID:       req.StaffID,
		Date:          date,
		OpenIntervals: []domain.TimeInterval{},
		Anomalies:     []domain.Anomaly{},
	}

	shifts := req.Schedule.Shifts(req.StaffID)
	parts := req.Schedule.AppointmentParts(req.StaffID)

	partIntervals := make([]domain.TimeInterval, 0, len(parts))
	for _, p := range parts {
		partIntervals = append(partIntervals, p.Interval)
	}
	mergedParts := domain.MergeIntervals(partIntervals)

	if len(shifts) == 0 {
		if len(parts) == 0 {
			// Сотрудник в этот день не работает и записей нет
			return resp, nil
		}

		// Записи есть, а смен нет - отчётная аномалия, не ошибка
		bookedOutside := domain.SumMinutes(mergedParts)
		uc.logger.Warn("ComputeOpenTime: staff=%s date=%s has %d appointment part(s) but no shift",
			req.StaffID, date, len(parts))
		resp.Anomalies = append(resp.Anomalies, domain.Anomaly{
			Kind:    domain.AnomalyMissingShift,
			StaffID: req.StaffID,
			Date:    date,
			Minutes: bookedOutside,
			Detail:  fmt.Sprintf("%d appointment part(s) without any shift", len(parts)),
		})
		return resp, nil
	}

	shiftIntervals := make([]domain.TimeInterval, 0, len(shifts))
	for _, s := range shifts {
		shiftIntervals = append(shiftIntervals, s.Interval)
	}
	mergedShifts := domain.MergeIntervals(shiftIntervals)
	resp.ShiftMinutes = domain.SumMinutes(mergedShifts)

	// Свободные под-интервалы по каждой смене, в хронологическом порядке
	for _, shift := range mergedShifts {
		resp.OpenIntervals = append(resp.OpenIntervals, domain.SubtractIntervals(shift, mergedParts)...)
	}

	resp.OpenMinutes = domain.SumMinutes(resp.OpenIntervals)
	resp.BookedMinutes = resp.ShiftMinutes - resp.OpenMinutes

	// Время записей, выпавшее за пределы всех смен (опоздания, переработки).
	// В арифметику занятых/свободных минут не входит, но поднимается наверх
	for _, part := range mergedParts {
		for _, excess := range domain.SubtractIntervals(part, mergedShifts) {
			uc.logger.Warn("ComputeOpenTime: staff=%s date=%s booking outside shift: %s",
				req.StaffID, date, excess)
			resp.Anomalies = append(resp.Anomalies, domain.Anomaly{
				Kind:     domain.AnomalyOutOfShiftBooking,
				StaffID:  req.StaffID,
				Date:     date,
				Interval: excess,
				Minutes:  excess.Minutes(),
			})
		}
	}

	uc.logger.Info("ComputeOpenTime: staff=%s date=%s shift=%dm booked=%dm open=%dm intervals=%d anomalies=%d",
		req.StaffID, date, resp.ShiftMinutes, resp.BookedMinutes, resp.OpenMinutes,
		len(resp.OpenIntervals), len(resp.Anomalies))

	return resp, nil
}
