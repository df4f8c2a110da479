package domain

import "sort"

// ShiftRecord represents one scheduled working interval of a staff member
type ShiftRecord struct {
	StaffID    string
	Date       string // YYYY-MM-DD
	Interval   TimeInterval
	LocationID string
}

// AppointmentPart represents a single staff-assigned service slice within an appointment.
// An appointment may contain multiple parts, each consuming its own slice of time
type AppointmentPart struct {
	AppointmentID string
	StaffID       string
	ServiceID     string
	Interval      TimeInterval

	// Denormalized appointment data carried through for reporting
	ClientName  string
	ClientPhone string
	ClientNotes string
	Status      string
	TotalPrice  string
}

// DaySchedule holds, for one calendar date, each staff member's shift intervals
// and booked appointment parts. Built fresh per input day feed; immutable once constructed
type DaySchedule struct {
	Date                      string
	ShiftsByStaffID           map[string][]ShiftRecord
	AppointmentPartsByStaffID map[string][]AppointmentPart
}

// NewDaySchedule creates an empty schedule for the given date
func NewDaySchedule(date string) *DaySchedule {
	return &DaySchedule{
		Date:                      date,
		ShiftsByStaffID:           make(map[string][]ShiftRecord),
		AppointmentPartsByStaffID: make(map[string][]AppointmentPart),
	}
}

// Shifts returns the shift records for a staff member, nil when none are scheduled
func (s *DaySchedule) Shifts(staffID string) []ShiftRecord {
	return s.ShiftsByStaffID[staffID]
}

// AppointmentParts returns the appointment parts for a staff member, nil when none are booked
func (s *DaySchedule) AppointmentParts(staffID string) []AppointmentPart {
	return s.AppointmentPartsByStaffID[staffID]
}

// StaffIDs returns every staff id present in the schedule (shifts or appointments),
// sorted numerically when the ids are numeric
func (s *DaySchedule) StaffIDs() []string {
	seen := make(map[string]struct{}, len(s.ShiftsByStaffID))
	ids := make([]string, 0, len(s.ShiftsByStaffID))

	for id := range s.ShiftsByStaffID {
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for id := range s.AppointmentPartsByStaffID {
		if _, ok := seen[id]; !ok {
			ids = append(ids, id)
		}
	}

	sort.Slice(ids, func(a, b int) bool {
		return LessStaffID(ids[a], ids[b])
	})

	return ids
}

// SortChronologically sorts every per-staff slice by interval start.
// Вызывается один раз при построении расписания
func (s *DaySchedule) SortChronologically() {
	for _, shifts := range s.ShiftsByStaffID {
		sort.Slice(shifts, func(a, b int) bool {
			return shifts[a].Interval.Start.Before(shifts[b].Interval.Start)
		})
	}
	for _, parts := range s.AppointmentPartsByStaffID {
		sort.Slice(parts, func(a, b int) bool {
			return parts[a].Interval.Start.Before(parts[b].Interval.Start)
		})
	}
}
