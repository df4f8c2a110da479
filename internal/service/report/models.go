package report

import "github.com/m04kA/SMC-ScheduleReport/internal/domain"

// StaffDayResult результат расчёта свободного времени одного сотрудника за день.
// Заполняется из ответа usecase compute_open_time
type StaffDayResult struct {
	StaffID       string
	OpenIntervals []domain.TimeInterval
	OpenMinutes   int
	BookedMinutes int
	ShiftMinutes  int
	Anomalies     []domain.Anomaly
}

// DayReport входные данные отчёта за один день
type DayReport struct {
	Schedule     *domain.DaySchedule
	Results      []StaffDayResult // В порядке вывода (по возрастанию staffId)
	DayAnomalies []domain.Anomaly // Аномалии построения расписания, не привязанные к результатам
}
