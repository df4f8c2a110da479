package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ScheduleReport/internal/domain"
	"github.com/m04kA/SMC-ScheduleReport/pkg/logger"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не читается или не парсится
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях в конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация приложения
type Config struct {
	Logs   LogsConfig   `toml:"logs"`
	Input  InputConfig  `toml:"input"`
	Report ReportConfig `toml:"report"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// InputConfig пути к входным JSON-выгрузкам
type InputConfig struct {
	StartupFile string   `toml:"startup_file"`
	CatalogFile string   `toml:"catalog_file"`
	DayFiles    []string `toml:"day_files"`
}

// ReportConfig настройки отчёта
type ReportConfig struct {
	PartTimeStrategy string `toml:"part_time_strategy"`
	ShowDirectory    bool   `toml:"show_directory"`
}

// Load reads and validates the TOML configuration file
func Load(path string) (*Config, error) {
	cfg := &Config{
		Logs: LogsConfig{
			Level: "info",
		},
		Report: ReportConfig{
			PartTimeStrategy: string(domain.PartTimeExplicit),
			ShowDirectory:    true,
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := logger.ParseLevel(c.Logs.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Input.StartupFile == "" {
		return fmt.Errorf("%w: input.startup_file is required", ErrInvalidConfig)
	}
	if c.Input.CatalogFile == "" {
		return fmt.Errorf("%w: input.catalog_file is required", ErrInvalidConfig)
	}
	if len(c.Input.DayFiles) == 0 {
		return fmt.Errorf("%w: input.day_files must list at least one day feed", ErrInvalidConfig)
	}
	if !c.PartTimeStrategy().IsValid() {
		return fmt.Errorf("%w: report.part_time_strategy must be %q or %q",
			ErrInvalidConfig, domain.PartTimeExplicit, domain.PartTimeOffset)
	}
	return nil
}

// PartTimeStrategy returns the configured strategy as a domain value
func (c *Config) PartTimeStrategy() domain.PartTimeStrategy {
	return domain.PartTimeStrategy(c.Report.PartTimeStrategy)
}
