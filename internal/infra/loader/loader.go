package loader

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadStartupSnapshot reads and decodes the staff directory snapshot
func LoadStartupSnapshot(path string) (*StartupSnapshot, error) {
	var snapshot StartupSnapshot
	if err := decodeFile(path, &snapshot); err != nil {
		return nil, err
	}

	if len(snapshot.Auth.SharedData.Selectors.Staff.ByID) == 0 {
		return nil, fmt.Errorf("%w: no staff entries in %s", ErrEmptySnapshot, path)
	}

	return &snapshot, nil
}

// LoadDayFeed reads and decodes one day's shifts-and-appointments feed.
// Структурная валидация (обязательные ключи) выполняется в build_day_schedule,
// здесь только чтение и разбор JSON
func LoadDayFeed(path string) (*DayFeed, error) {
	var feed DayFeed
	if err := decodeFile(path, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// LoadCatalogSnapshot reads and decodes the service catalog snapshot
func LoadCatalogSnapshot(path string) (*CatalogSnapshot, error) {
	var snapshot CatalogSnapshot
	if err := decodeFile(path, &snapshot); err != nil {
		return nil, err
	}

	if len(snapshot.ServicesByID) == 0 {
		return nil, fmt.Errorf("%w: no services in %s", ErrEmptySnapshot, path)
	}

	return &snapshot, nil
}

func decodeFile(path string, target interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
	}

	return nil
}
