package domain

// Time format constants
const (
	TimeFormat     = "15:04"               // HH:MM
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // локальное время из выгрузки, без зоны
)

// PartTimeStrategy определяет, как вычисляется интервал части записи
type PartTimeStrategy string

const (
	// PartTimeExplicit - у части есть собственные startAtLocal/endAtLocal, используем их напрямую.
	// Части без собственного времени досчитываются по offset-схеме
	PartTimeExplicit PartTimeStrategy = "explicit"

	// PartTimeOffset - интервал части вычисляется от начала записи плюс
	// суммарная длительность предыдущих частей того же сотрудника
	PartTimeOffset PartTimeStrategy = "offset"
)

// IsValid returns true for a known strategy value
func (s PartTimeStrategy) IsValid() bool {
	return s == PartTimeExplicit || s == PartTimeOffset
}
