package compute_open_time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleReport/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

const testDate = "2024-03-15"

func at(hour, min int) time.Time {
	return time.Date(2024, 3, 15, hour, min, 0, 0, time.Local)
}

func iv(h1, m1, h2, m2 int) domain.TimeInterval {
	return domain.TimeInterval{Start: at(h1, m1), End: at(h2, m2)}
}

func scheduleWith(staffID string, shifts []domain.TimeInterval, parts []domain.TimeInterval) *domain.DaySchedule {
	schedule := domain.NewDaySchedule(testDate)

	for _, s := range shifts {
		schedule.ShiftsByStaffID[staffID] = append(schedule.ShiftsByStaffID[staffID], domain.ShiftRecord{
			StaffID:  staffID,
			Date:     testDate,
			Interval: s,
		})
	}
	for _, p := range parts {
		schedule.AppointmentPartsByStaffID[staffID] = append(schedule.AppointmentPartsByStaffID[staffID], domain.AppointmentPart{
			AppointmentID: "appt",
			StaffID:       staffID,
			ServiceID:     "1",
			Interval:      p,
		})
	}

	schedule.SortChronologically()
	return schedule
}

func TestExecute_SingleShiftSingleAppointment(t *testing.T) {
	uc := NewUseCase(noopLogger{})

	// Смена 10:00-20:00, одна запись 11:30-12:30
	schedule := scheduleWith("18",
		[]domain.TimeInterval{iv(10, 0, 20, 0)},
		[]domain.TimeInterval{iv(11, 30, 12, 30)},
	)

	resp, err := uc.Execute(&Request{StaffID: "18", Schedule: schedule})
	require.NoError(t, err)

	assert.Equal(t, 600, resp.ShiftMinutes)
	assert.Equal(t, 60, resp.BookedMinutes)
	assert.Equal(t, 540, resp.OpenMinutes)
	require.Len(t, resp.OpenIntervals, 2)
	assert.Equal(t, iv(10, 0, 11, 30), resp.OpenIntervals[0])
	assert.Equal(t, iv(12, 30, 20, 0), resp.OpenIntervals[1])
	assert.Empty(t, resp.Anomalies)
}

func TestExecute_DoubleBookingCountedOnce(t *testing.T) {
	uc := NewUseCase(noopLogger{})

	// Две пересекающиеся записи внутри смены 10:00-13:00
	schedule := scheduleWith("7",
		[]domain.TimeInterval{iv(10, 0, 13, 0)},
		[]domain.TimeInterval{iv(11, 0, 12, 0), iv(11, 30, 12, 30)},
	)

	resp, err := uc.Execute(&Request{StaffID: "7", Schedule: schedule})
	require.NoError(t, err)

	assert.Equal(t, 180, resp.ShiftMinutes)
	assert.Equal(t, 90, resp.BookedMinutes, "merged booking is 11:00-12:30, not 120 minutes")
	assert.Equal(t, 90, resp.OpenMinutes)
	require.Len(t, resp.OpenIntervals, 2)
	assert.Equal(t, iv(10, 0, 11, 0), resp.OpenIntervals[0])
	assert.Equal(t, iv(12, 30, 13, 0), resp.OpenIntervals[1])
}

func TestExecute_AppointmentWithoutShift(t *testing.T) {
	uc := NewUseCase(noopLogger{})

	schedule := scheduleWith("5",
		nil,
		[]domain.TimeInterval{iv(11, 0, 12, 0)},
	)

	resp, err := uc.Execute(&Request{StaffID: "5", Schedule: schedule})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.ShiftMinutes)
	assert.Equal(t, 0, resp.OpenMinutes)
	assert.Equal(t, 0, resp.BookedMinutes)
	assert.Empty(t, resp.OpenIntervals)

	require.Len(t, resp.Anomalies, 1)
	assert.Equal(t, domain.AnomalyMissingShift, resp.Anomalies[0].Kind)
	assert.Equal(t, 60, resp.Anomalies[0].Minutes)
}

func TestExecute_NotWorkingAndNoAppointments(t *testing.T) {
	uc := NewUseCase(noopLogger{})

	schedule := domain.NewDaySchedule(testDate)

	resp, err := uc.Execute(&Request{StaffID: "99", Schedule: schedule})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.ShiftMinutes)
	assert.Equal(t, 0, resp.OpenMinutes)
	assert.Equal(t, 0, resp.BookedMinutes)
	assert.Empty(t, resp.OpenIntervals)
	assert.Empty(t, resp.Anomalies)
}

func TestExecute_SplitShifts(t *testing.T) {
	uc := NewUseCase(noopLogger{})

	// Разрывная смена: записи попадают в обе части
	schedule := scheduleWith("3",
		[]domain.TimeInterval{iv(9, 0, 12, 0), iv(13, 0, 17, 0)},
		[]domain.TimeInterval{iv(10, 0, 10, 30), iv(14, 0, 15, 0)},
	)

	resp, err := uc.Execute(&Request{StaffID: "3", Schedule: schedule})
	require.NoError(t, err)

	assert.Equal(t, 420, resp.ShiftMinutes)
	assert.Equal(t, 90, resp.BookedMinutes)
	assert.Equal(t, 330, resp.OpenMinutes)
	require.Len(t, resp.OpenIntervals, 4)
	assert.Equal(t, iv(9, 0, 10, 0), resp.OpenIntervals[0])
	assert.Equal(t, iv(10, 30, 12, 0), resp.OpenIntervals[1])
	assert.Equal(t, iv(13, 0, 14, 0), resp.OpenIntervals[2])
	assert.Equal(t, iv(15, 0, 17, 0), resp.OpenIntervals[3])
}

func TestExecute_OverlappingShiftsMerged(t *testing.T) {
	uc := NewUseCase(noopLogger{})

	schedule := scheduleWith("4",
		[]domain.TimeInterval{iv(9, 0, 14, 0), iv(12, 0, 18, 0)},
		nil,
	)

	resp, err := uc.Execute(&Request{StaffID: "4", Schedule: schedule})
	require.NoError(t, err)

	assert.Equal(t, 540, resp.ShiftMinutes, "overlapping shifts merge into 9:00-18:00")
	assert.Equal(t, 540, resp.OpenMinutes)
	require.Len(t, resp.OpenIntervals, 1)
}

func TestExecute_OutOfShiftBooking(t *testing.T) {
	uc := NewUseCase(noopLogger{})

	// Запись выползает за конец смены на 30 минут
	schedule := scheduleWith("12",
		[]domain.TimeInterval{iv(10, 0, 20, 0)},
		[]domain.TimeInterval{iv(19, 30, 20, 30)},
	)

	resp, err := uc.Execute(&Request{StaffID: "12", Schedule: schedule})
	require.NoError(t, err)

	// Свободное время не выходит за границу смены,
	// занятым считается только кусок внутри смены
	assert.Equal(t, 600, resp.ShiftMinutes)
	assert.Equal(t, 30, resp.BookedMinutes)
	assert.Equal(t, 570, resp.OpenMinutes)

	require.Len(t, resp.Anomalies, 1)
	anomaly := resp.Anomalies[0]
	assert.Equal(t, domain.AnomalyOutOfShiftBooking, anomaly.Kind)
	assert.Equal(t, 30, anomaly.Minutes)
	assert.Equal(t, iv(20, 0, 20, 30), anomaly.Interval)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(noopLogger{})

	_, err := uc.Execute(&Request{StaffID: "1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(&Request{Schedule: domain.NewDaySchedule(testDate)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
