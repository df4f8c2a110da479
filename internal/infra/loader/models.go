package loader

import "encoding/json"

// Сырые структуры повторяют форму JSON-выгрузок.
// Числовые id приходят то числом, то строкой, поэтому json.Number

// StartupSnapshot выгрузка app-startup-check-auth.json
// Справочник сотрудников лежит глубоко внутри auth-селекторов
type StartupSnapshot struct {
	Auth struct {
		SharedData struct {
			Selectors struct {
				Staff struct {
					ByID map[string]RawStaff `json:"byId"`
				} `json:"staff"`
			} `json:"selectors"`
		} `json:"sharedData"`
	} `json:"auth"`
}

// RawStaff одна запись справочника сотрудников
type RawStaff struct {
	FirstName       string  `json:"firstName"`
	LastName        *string `json:"lastName"`
	Email           string  `json:"email"`
	ServiceProvider bool    `json:"serviceProvider"`
}

// DayFeed выгрузка расписания и записей на один день (multi-provider-view.json)
type DayFeed struct {
	Date                  string                           `json:"date"`
	ShiftsByStaffIDAndDay map[string]map[string][]RawShift `json:"shiftsByStaffIdAndDay"`
	Appointments          *RawAppointments                 `json:"appointments"`
}

// RawShift одна смена сотрудника
type RawShift struct {
	StartAtLocal string      `json:"startAtLocal"`
	EndAtLocal   string      `json:"endAtLocal"`
	LocationID   json.Number `json:"locationId"`
}

// RawAppointments записи дня
type RawAppointments struct {
	ByID         map[string]RawAppointment `json:"byId"`
	IDsByStaffID map[string][]json.Number  `json:"idsByStaffId"`
}

// RawAppointment одна запись с частями-услугами
type RawAppointment struct {
	StartAtLocal     string     `json:"startAtLocal"`
	TotalPrice       string     `json:"totalPrice"`
	WorkflowStatus   string     `json:"workflowStatus"`
	Notes            string     `json:"notes"`
	Client           *RawClient `json:"client"`
	AppointmentParts []RawPart  `json:"appointmentParts"`
}

// RawClient клиент записи
type RawClient struct {
	FirstName string  `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     string  `json:"phone"`
	Notes     string  `json:"notes"`
}

// RawPart одна часть записи, назначенная на сотрудника.
// StartAtLocal/EndAtLocal могут отсутствовать - тогда интервал досчитывается
// от начала записи (см. build_day_schedule)
type RawPart struct {
	ServiceID      json.Number `json:"serviceId"`
	StaffID        json.Number `json:"staffId"`
	DurationInMins int         `json:"durationInMins"`
	StartAtLocal   string      `json:"startAtLocal"`
	EndAtLocal     string      `json:"endAtLocal"`
	Price          string      `json:"price"`
}

// CatalogSnapshot выгрузка каталога услуг
type CatalogSnapshot struct {
	ServicesByID          map[string]RawService  `json:"servicesById"`
	ServiceCategoriesByID map[string]RawCategory `json:"serviceCategoriesById"`
}

// RawService одна услуга каталога
type RawService struct {
	Name            string      `json:"name"`
	DefaultDuration int         `json:"defaultDuration"`
	CategoryID      json.Number `json:"categoryId"`
}

// RawCategory одна категория услуг
type RawCategory struct {
	Name string `json:"name"`
}
