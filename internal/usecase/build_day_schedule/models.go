package build_day_schedule

import (
	"github.com/m04kA/SMC-ScheduleReport/internal/domain"
	"github.com/m04kA/SMC-ScheduleReport/internal/infra/loader"
)

// Request модель запроса на построение расписания дня
type Request struct {
	Feed *loader.DayFeed // Сырой фид дня (обязателен)
	Date string          // Целевая дата YYYY-MM-DD; записи других дат игнорируются

	// PrevFeed - фид предыдущего дня, если он загружен в этом же батче.
	// Из него подбираются хвосты записей, переходящих через полночь на Date
	PrevFeed *loader.DayFeed

	// NextDayLoaded - будет ли следующий день построен с этим фидом в роли PrevFeed.
	// Если нет, хвост записи за полночь отбрасывается с аномалией
	NextDayLoaded bool

	Strategy domain.PartTimeStrategy
}

// Response модель ответа с построенным расписанием
type Response struct {
	Schedule  *domain.DaySchedule
	Anomalies []domain.Anomaly // Аномалии, обнаруженные при построении (не фатальные)
}
