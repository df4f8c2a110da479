package build_day_schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleReport/internal/domain"
	"github.com/m04kA/SMC-ScheduleReport/internal/infra/loader"
)

// collectParts разворачивает записи фида в плоский список частей с полными
// (ещё не усечёнными до окна дня) интервалами.
//
// Интервал части определяется стратегией:
//   - explicit: собственные startAtLocal/endAtLocal части; части без них
//     досчитываются по offset-схеме
//   - offset: начало записи плюс суммарная длительность предыдущих частей
//     того же сотрудника в этой записи
//
// Невалидные части (end <= start, нулевая или отрицательная длительность)
// отбрасываются с аномалией, не фатально
func collectParts(
	feed *loader.DayFeed,
	date string,
	strategy domain.PartTimeStrategy,
	anomalies *[]domain.Anomaly,
) []domain.AppointmentPart {
	if feed.Appointments == nil {
		return nil
	}

	// Сортируем id записей для детерминированного порядка обхода map
	appointmentIDs := make([]string, 0, len(feed.Appointments.ByID))
	for id := range feed.Appointments.ByID {
		appointmentIDs = append(appointmentIDs, id)
	}
	sort.Strings(appointmentIDs)

	parts := make([]domain.AppointmentPart, 0, len(appointmentIDs))

	for _, appointmentID := range appointmentIDs {
		appointment := feed.Appointments.ByID[appointmentID]

		// Начало записи нужно только offset-схеме; парсим лениво
		var appointmentStart time.Time
		var appointmentStartErr error
		appointmentStartParsed := false

		clientName := ""
		clientPhone := ""
		clientNotes := ""
		if appointment.Client != nil {
			last := ""
			if appointment.Client.LastName != nil {
				last = *appointment.Client.LastName
			}
			clientName = strings.TrimSpace(appointment.Client.FirstName + " " + last)
			clientPhone = appointment.Client.Phone
			clientNotes = appointment.Client.Notes
		}

		// Накопленное смещение предыдущих частей по каждому сотруднику
		offsetMins := make(map[string]int)

		for _, raw := range appointment.AppointmentParts {
			staffID := raw.StaffID.String()
			if staffID == "" {
				continue
			}

			part := domain.AppointmentPart{
				AppointmentID: appointmentID,
				StaffID:       staffID,
				ServiceID:     raw.ServiceID.String(),
				ClientName:    clientName,
				ClientPhone:   clientPhone,
				ClientNotes:   clientNotes,
				Status:        appointment.WorkflowStatus,
				TotalPrice:    appointment.TotalPrice,
			}

			useExplicit := strategy == domain.PartTimeExplicit &&
				raw.StartAtLocal != "" && raw.EndAtLocal != ""

			if useExplicit {
				interval, err := parseLocalInterval(raw.StartAtLocal, raw.EndAtLocal)
				if err != nil {
					*anomalies = append(*anomalies, domain.Anomaly{
						Kind:    domain.AnomalyInvalidInterval,
						StaffID: staffID,
						Date:    date,
						Detail:  fmt.Sprintf("appointment %s part: %v", appointmentID, err),
					})
					continue
				}
				part.Interval = interval
			} else {
				// Offset-схема: нужна валидная длительность и начало записи
				if raw.DurationInMins <= 0 {
					*anomalies = append(*anomalies, domain.Anomaly{
						Kind:    domain.AnomalyInvalidInterval,
						StaffID: staffID,
						Date:    date,
						Detail:  fmt.Sprintf("appointment %s part: non-positive duration %d", appointmentID, raw.DurationInMins),
					})
					continue
				}

				if !appointmentStartParsed {
					appointmentStart, appointmentStartErr = time.ParseInLocation(
						domain.DateTimeFormat, appointment.StartAtLocal, time.Local)
					appointmentStartParsed = true
				}
				if appointmentStartErr != nil {
					*anomalies = append(*anomalies, domain.Anomaly{
						Kind:    domain.AnomalyInvalidInterval,
						StaffID: staffID,
						Date:    date,
						Detail:  fmt.Sprintf("appointment %s: bad startAtLocal %q", appointmentID, appointment.StartAtLocal),
					})
					continue
				}

				start := appointmentStart.Add(time.Duration(offsetMins[staffID]) * time.Minute)
				part.Interval = domain.TimeInterval{
					Start: start,
					End:   start.Add(time.Duration(raw.DurationInMins) * time.Minute),
				}
			}

			// Смещение растёт на длительность каждой размещённой части сотрудника
			if raw.DurationInMins > 0 {
				offsetMins[staffID] += raw.DurationInMins
			}

			parts = append(parts, part)
		}
	}

	return parts
}
