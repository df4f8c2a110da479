package domain

import (
	"sort"
	"strconv"
	"strings"
)

// StaffEntry describes one staff member from the directory snapshot
type StaffEntry struct {
	ID              string
	FirstName       string
	LastName        string // optional, may be empty
	Email           string
	ServiceProvider bool
}

// FullName returns "First Last" with a missing last name trimmed away
func (e StaffEntry) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// StaffDirectory is an immutable staffId -> entry lookup table,
// built once at program start and shared read-only across all day computations
type StaffDirectory struct {
	byID map[string]StaffEntry
}

// NewStaffDirectory builds a directory from decoded snapshot entries
func NewStaffDirectory(entries map[string]StaffEntry) *StaffDirectory {
	byID := make(map[string]StaffEntry, len(entries))
	for id, e := range entries {
		e.ID = id
		byID[id] = e
	}
	return &StaffDirectory{byID: byID}
}

// Entry returns the directory entry and whether the id is known
func (d *StaffDirectory) Entry(staffID string) (StaffEntry, bool) {
	e, ok := d.byID[staffID]
	return e, ok
}

// DisplayName resolves a staff id to a display name.
// Неизвестный id не является фатальной ошибкой - возвращаем сам id как подпись
func (d *StaffDirectory) DisplayName(staffID string) string {
	if e, ok := d.byID[staffID]; ok {
		if name := e.FullName(); name != "" {
			return name
		}
	}
	return staffID
}

// IDs returns all known staff ids, sorted numerically when possible
func (d *StaffDirectory) IDs() []string {
	ids := make([]string, 0, len(d.byID))
	for id := range d.byID {
		ids = append(ids, id)
	}
	sortStaffIDs(ids)
	return ids
}

// Len returns the number of directory entries
func (d *StaffDirectory) Len() int {
	return len(d.byID)
}

// ServiceEntry describes one service from the catalog snapshot
type ServiceEntry struct {
	ID              string
	Name            string
	CategoryID      string
	DefaultDuration int // minutes
}

// ServiceCatalog is an immutable serviceId -> entry lookup table
type ServiceCatalog struct {
	servicesByID   map[string]ServiceEntry
	categoriesByID map[string]string
}

// NewServiceCatalog builds a catalog from decoded snapshot entries
func NewServiceCatalog(services map[string]ServiceEntry, categories map[string]string) *ServiceCatalog {
	byID := make(map[string]ServiceEntry, len(services))
	for id, s := range services {
		s.ID = id
		byID[id] = s
	}
	return &ServiceCatalog{servicesByID: byID, categoriesByID: categories}
}

// Service returns the catalog entry and whether the id is known
func (c *ServiceCatalog) Service(serviceID string) (ServiceEntry, bool) {
	s, ok := c.servicesByID[serviceID]
	return s, ok
}

// ServiceName resolves a service id to its display name, falling back to the raw id
func (c *ServiceCatalog) ServiceName(serviceID string) string {
	if s, ok := c.servicesByID[serviceID]; ok && s.Name != "" {
		return s.Name
	}
	return serviceID
}

// CategoryName resolves a category id to its display name, falling back to the raw id
func (c *ServiceCatalog) CategoryName(categoryID string) string {
	if name, ok := c.categoriesByID[categoryID]; ok && name != "" {
		return name
	}
	return categoryID
}

// Len returns the number of services in the catalog
func (c *ServiceCatalog) Len() int {
	return len(c.servicesByID)
}

// LessStaffID compares staff ids numerically when both parse as integers,
// lexicographically otherwise. Выгрузка использует числовые id в виде строк
func LessStaffID(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

func sortStaffIDs(ids []string) {
	sort.Slice(ids, func(a, b int) bool {
		return LessStaffID(ids[a], ids[b])
	})
}
