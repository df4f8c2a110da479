package loader

import "errors"

var (
	// ErrFileNotFound возвращается, когда файл выгрузки отсутствует
	ErrFileNotFound = errors.New("loader: file not found")

	// ErrInvalidJSON возвращается, когда файл не является корректным JSON
	ErrInvalidJSON = errors.New("loader: invalid JSON")

	// ErrEmptySnapshot возвращается, когда в выгрузке нет ожидаемых данных
	ErrEmptySnapshot = errors.New("loader: snapshot contains no data")
)
