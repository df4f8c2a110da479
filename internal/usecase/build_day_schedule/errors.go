package build_day_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrMalformedDayFeed возвращается, когда в фиде дня нет обязательных верхнеуровневых ключей.
	// Такой день пропускается целиком, остальные дни батча обрабатываются дальше
	ErrMalformedDayFeed = errors.New("malformed day feed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
