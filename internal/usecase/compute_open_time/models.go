package compute_open_time

import "github.com/m04kA/SMC-ScheduleReport/internal/domain"

// Request модель запроса на расчёт свободного времени сотрудника за день
type Request struct {
	StaffID  string
	Schedule *domain.DaySchedule
}

// Response результат расчёта.
// BookedMinutes выводится как дополнение свободного времени внутри смен
// (ShiftMinutes - OpenMinutes), а не суммой длительностей записей:
// так двойные брони не считаются дважды, а время записей вне смен
// не попадает в занятые минуты (оно уходит в аномалии)
type Response struct {
	StaffID       string
	Date          string
	OpenIntervals []domain.TimeInterval // Свободные интервалы внутри смен, в хронологическом порядке
	OpenMinutes   int                   // Суммарное свободное время в минутах
	BookedMinutes int                   // Занятое время внутри смен
	ShiftMinutes  int                   // Суммарная длительность смен (после объединения пересекающихся)
	Anomalies     []domain.Anomaly
}
