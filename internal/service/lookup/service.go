package lookup

import (
	"github.com/m04kA/SMC-ScheduleReport/internal/domain"
	"github.com/m04kA/SMC-ScheduleReport/internal/infra/loader"
)

// Service строит справочники сотрудников и услуг из сырых выгрузок.
// Справочники строятся один раз при старте и дальше используются только на чтение
type Service struct {
	logger Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// BuildStaffDirectory converts the raw startup snapshot into an immutable directory
func (s *Service) BuildStaffDirectory(snapshot *loader.StartupSnapshot) *domain.StaffDirectory {
	raw := snapshot.Auth.SharedData.Selectors.Staff.ByID
	entries := make(map[string]domain.StaffEntry, len(raw))

	for id, staff := range raw {
		entry := domain.StaffEntry{
			FirstName:       staff.FirstName,
			Email:           staff.Email,
			ServiceProvider: staff.ServiceProvider,
		}
		// lastName в выгрузке бывает null
		if staff.LastName != nil {
			entry.LastName = *staff.LastName
		}
		if entry.FirstName == "" {
			s.logger.Warn("BuildStaffDirectory: staff id=%s has no first name", id)
		}
		entries[id] = entry
	}

	s.logger.Info("BuildStaffDirectory: loaded %d staff entries", len(entries))
	return domain.NewStaffDirectory(entries)
}

// BuildServiceCatalog converts the raw catalog snapshot into an immutable catalog
func (s *Service) BuildServiceCatalog(snapshot *loader.CatalogSnapshot) *domain.ServiceCatalog {
	services := make(map[string]domain.ServiceEntry, len(snapshot.ServicesByID))
	for id, svc := range snapshot.ServicesByID {
		services[id] = domain.ServiceEntry{
			Name:            svc.Name,
			CategoryID:      svc.CategoryID.String(),
			DefaultDuration: svc.DefaultDuration,
		}
	}

	categories := make(map[string]string, len(snapshot.ServiceCategoriesByID))
	for id, cat := range snapshot.ServiceCategoriesByID {
		categories[id] = cat.Name
	}

	s.logger.Info("BuildServiceCatalog: loaded %d services, %d categories", len(services), len(categories))
	return domain.NewServiceCatalog(services, categories)
}
