package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/m04kA/SMC-ScheduleReport/internal/domain"
)

const (
	headerWidth = 60
	staffWidth  = 40
	maxNotesLen = 80
)

// Service рендерит текстовый отчёт по свободному времени сотрудников.
// Числа и интервалы приходят готовыми из compute_open_time, сервис отвечает
// только за раскладку текста и подстановку имён из справочников
type Service struct {
	directory *domain.StaffDirectory
	catalog   *domain.ServiceCatalog
	logger    Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(directory *domain.StaffDirectory, catalog *domain.ServiceCatalog, logger Logger) *Service {
	return &Service{
		directory: directory,
		catalog:   catalog,
		logger:    logger,
	}
}

// RenderDirectory prints the staff directory section
func (s *Service) RenderDirectory(w io.Writer) {
	printHeader(w, "STAFF DIRECTORY")

	for _, id := range s.directory.IDs() {
		entry, _ := s.directory.Entry(id)

		role := "Non-Service Provider"
		if entry.ServiceProvider {
			role = "Service Provider"
		}
		email := entry.Email
		if email == "" {
			email = "No email"
		}

		fmt.Fprintf(w, "ID: %2s | Name: %-25s | Email: %-30s | %s\n",
			id, entry.FullName(), email, role)
	}
}

// RenderDay prints the per-staff open time report for one day
func (s *Service) RenderDay(w io.Writer, day *DayReport) {
	printHeader(w, "STAFF OPEN TIME FOR THE DAY")
	fmt.Fprintf(w, "Date: %s\n", day.Schedule.Date)
	fmt.Fprintln(w, strings.Repeat("-", headerWidth))

	for _, result := range day.Results {
		s.renderStaff(w, day.Schedule, result)
	}

	if len(day.DayAnomalies) > 0 {
		fmt.Fprintln(w, "  DAY ANOMALIES:")
		for _, a := range day.DayAnomalies {
			fmt.Fprintf(w, "    %s\n", a)
		}
	}
}

func (s *Service) renderStaff(w io.Writer, schedule *domain.DaySchedule, result StaffDayResult) {
	name := s.directory.DisplayName(result.StaffID)
	if _, known := s.directory.Entry(result.StaffID); !known {
		// Неизвестный id - не фатально, используем его как подпись
		s.logger.Warn("RenderDay: staff id=%s is not in the directory", result.StaffID)
		name = fmt.Sprintf("%s (not in directory)", name)
	}

	fmt.Fprintf(w, "\nStaff ID %s: %s\n", result.StaffID, name)
	fmt.Fprintln(w, strings.Repeat("-", staffWidth))

	s.renderShifts(w, schedule.Shifts(result.StaffID))
	s.renderAppointments(w, schedule.AppointmentParts(result.StaffID))
	s.renderOpenTime(w, result)

	if len(result.Anomalies) > 0 {
		fmt.Fprintln(w, "  ANOMALIES:")
		for _, a := range result.Anomalies {
			fmt.Fprintf(w, "    %s\n", a)
		}
	}

	fmt.Fprintln(w)
}

func (s *Service) renderShifts(w io.Writer, shifts []domain.ShiftRecord) {
	fmt.Fprintln(w, "  SHIFTS:")
	if len(shifts) == 0 {
		fmt.Fprintln(w, "    No shifts scheduled")
		return
	}

	for i, shift := range shifts {
		fmt.Fprintf(w, "    Shift %d: %s - %s (Location %s)\n",
			i+1,
			shift.Interval.Start.Format(domain.TimeFormat),
			shift.Interval.End.Format(domain.TimeFormat),
			shift.LocationID)
	}
}

func (s *Service) renderAppointments(w io.Writer, parts []domain.AppointmentPart) {
	fmt.Fprintln(w, "  APPOINTMENTS:")
	if len(parts) == 0 {
		fmt.Fprintln(w, "    No appointments scheduled")
		return
	}

	for i, part := range parts {
		client := part.ClientName
		if client == "" {
			client = "Unknown Client"
		}

		line := fmt.Sprintf("    Appt %d: %s-%s | %s | %s | %dmin",
			i+1,
			part.Interval.Start.Format(domain.TimeFormat),
			part.Interval.End.Format(domain.TimeFormat),
			s.catalog.ServiceName(part.ServiceID),
			client,
			part.Interval.Minutes())
		if part.TotalPrice != "" {
			line += fmt.Sprintf(" | $%s", part.TotalPrice)
		}
		if part.Status != "" {
			line += fmt.Sprintf(" | %s", part.Status)
		}
		fmt.Fprintln(w, line)

		if part.ClientNotes != "" {
			fmt.Fprintf(w, "           Notes: %s\n", truncate(part.ClientNotes, maxNotesLen))
		}
		if part.ClientPhone != "" {
			fmt.Fprintf(w, "           Phone: %s\n", part.ClientPhone)
		}
	}
}

func (s *Service) renderOpenTime(w io.Writer, result StaffDayResult) {
	fmt.Fprintln(w, "  OPEN TIME:")
	if len(result.OpenIntervals) == 0 {
		fmt.Fprintln(w, "    None")
	} else {
		formatted := make([]string, len(result.OpenIntervals))
		for i, interval := range result.OpenIntervals {
			formatted[i] = interval.String()
		}
		fmt.Fprintf(w, "    %s\n", strings.Join(formatted, ", "))
	}

	fmt.Fprintf(w, "  TOTALS: shift=%dmin booked=%dmin open=%dmin\n",
		result.ShiftMinutes, result.BookedMinutes, result.OpenMinutes)
}

// RenderFooter prints the report footer
func (s *Service) RenderFooter(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", headerWidth))
	fmt.Fprintln(w, "End of Report")
	fmt.Fprintln(w, strings.Repeat("=", headerWidth))
}

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w, strings.Repeat("=", headerWidth))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", headerWidth))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
