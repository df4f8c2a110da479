package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleReport/internal/config"
	"github.com/m04kA/SMC-ScheduleReport/internal/domain"
	"github.com/m04kA/SMC-ScheduleReport/internal/infra/loader"
	lookupService "github.com/m04kA/SMC-ScheduleReport/internal/service/lookup"
	reportService "github.com/m04kA/SMC-ScheduleReport/internal/service/report"
	buildDayScheduleUC "github.com/m04kA/SMC-ScheduleReport/internal/usecase/build_day_schedule"
	computeOpenTimeUC "github.com/m04kA/SMC-ScheduleReport/internal/usecase/compute_open_time"
	"github.com/m04kA/SMC-ScheduleReport/pkg/logger"
)

func main() {
	// Загружаем конфигурацию
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	runID := uuid.NewString()
	log.Info("Starting SMC-ScheduleReport, run=%s", runID)
	log.Info("Configuration loaded from %s", configPath)

	// Загружаем справочники один раз на старте.
	// Без справочника сотрудников или каталога услуг отчёт не построить - фатально
	startup, err := loader.LoadStartupSnapshot(cfg.Input.StartupFile)
	if err != nil {
		log.Fatal("run=%s: failed to load startup snapshot: %v", runID, err)
	}

	catalogSnapshot, err := loader.LoadCatalogSnapshot(cfg.Input.CatalogFile)
	if err != nil {
		log.Fatal("run=%s: failed to load catalog snapshot: %v", runID, err)
	}

	// Инициализируем сервисы и use cases
	lookupSvc := lookupService.NewService(log)
	directory := lookupSvc.BuildStaffDirectory(startup)
	catalog := lookupSvc.BuildServiceCatalog(catalogSnapshot)

	reportSvc := reportService.NewService(directory, catalog, log)
	buildUseCase := buildDayScheduleUC.NewUseCase(log)
	computeUseCase := computeOpenTimeUC.NewUseCase(log)

	out := os.Stdout

	if cfg.Report.ShowDirectory {
		reportSvc.RenderDirectory(out)
	}

	// Загружаем фиды дней. Ошибка одного дня не прерывает батч
	feeds := loadDayFeeds(cfg.Input.DayFiles, log, runID)

	feedsByDate := make(map[string]*loader.DayFeed, len(feeds))
	dates := make([]string, 0, len(feeds))
	for _, feed := range feeds {
		if _, ok := feedsByDate[feed.Date]; ok {
			log.Warn("run=%s: duplicate feed for date=%s, keeping the first one", runID, feed.Date)
			continue
		}
		feedsByDate[feed.Date] = feed
		dates = append(dates, feed.Date)
	}
	sort.Strings(dates)

	processed := 0
	skipped := 0

	for _, date := range dates {
		if err := processDay(out, date, feedsByDate, cfg.PartTimeStrategy(), buildUseCase, computeUseCase, reportSvc); err != nil {
			log.Error("run=%s: skipping date=%s: %v", runID, date, err)
			skipped++
			continue
		}
		processed++
	}

	reportSvc.RenderFooter(out)
	log.Info("run=%s: done, days_processed=%d days_skipped=%d", runID, processed, skipped)
}

// loadDayFeeds читает фиды дней, пропуская нечитаемые файлы
func loadDayFeeds(paths []string, log *logger.Logger, runID string) []*loader.DayFeed {
	feeds := make([]*loader.DayFeed, 0, len(paths))
	for _, path := range paths {
		feed, err := loader.LoadDayFeed(path)
		if err != nil {
			log.Error("run=%s: failed to load day feed %s: %v", runID, path, err)
			continue
		}
		feeds = append(feeds, feed)
	}
	return feeds
}

// processDay строит расписание одной даты и печатает отчёт по каждому сотруднику
func processDay(
	out *os.File,
	date string,
	feedsByDate map[string]*loader.DayFeed,
	strategy domain.PartTimeStrategy,
	buildUseCase *buildDayScheduleUC.UseCase,
	computeUseCase *computeOpenTimeUC.UseCase,
	reportSvc *reportService.Service,
) error {
	buildResp, err := buildUseCase.Execute(&buildDayScheduleUC.Request{
		Feed:          feedsByDate[date],
		Date:          date,
		PrevFeed:      feedsByDate[adjacentDate(date, -1)],
		NextDayLoaded: feedsByDate[adjacentDate(date, 1)] != nil,
		Strategy:      strategy,
	})
	if err != nil {
		if errors.Is(err, buildDayScheduleUC.ErrMalformedDayFeed) {
			return err
		}
		return fmt.Errorf("build day schedule: %w", err)
	}

	schedule := buildResp.Schedule
	day := &reportService.DayReport{
		Schedule:     schedule,
		DayAnomalies: buildResp.Anomalies,
	}

	for _, staffID := range schedule.StaffIDs() {
		result, err := computeUseCase.Execute(&computeOpenTimeUC.Request{
			StaffID:  staffID,
			Schedule: schedule,
		})
		if err != nil {
			return fmt.Errorf("compute open time for staff=%s: %w", staffID, err)
		}

		day.Results = append(day.Results, reportService.StaffDayResult{
			StaffID:       result.StaffID,
			OpenIntervals: result.OpenIntervals,
			OpenMinutes:   result.OpenMinutes,
			BookedMinutes: result.BookedMinutes,
			ShiftMinutes:  result.ShiftMinutes,
			Anomalies:     result.Anomalies,
		})
	}

	reportSvc.RenderDay(out, day)
	return nil
}

// adjacentDate возвращает дату через delta дней, либо пустую строку для кривой даты
func adjacentDate(date string, delta int) string {
	t, err := time.ParseInLocation(domain.DateFormat, date, time.Local)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, delta).Format(domain.DateFormat)
}
