package service

import (
	"github.com/MKhiriev/portfolio-cms/internal/adapter"
	"github.com/MKhiriev/portfolio-cms/internal/config"
	"github.com/MKhiriev/portfolio-cms/internal/logger"
	"github.com/MKhiriev/portfolio-cms/internal/store"
	"github.com/MKhiriev/portfolio-cms/internal/validators"
)

// Services aggregates every business-layer service the handlers depend on.
type Services struct {
	AuthService      AuthService
	ContentService   ContentService
	PortfolioService PortfolioService
	ContactService   ContactService
}

// NewServices wires the service layer on top of the selected storage
// backend. notifier may be nil, in which case contact notifications are
// disabled and the telegramSent flag stays false.
func NewServices(storages *store.Storages, notifier adapter.ContactNotifier, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewPortfolioValidator()

	return &Services{
		AuthService:      NewAuthService(cfg.App, logger),
		ContentService:   NewContentService(storages.OverviewRepository, storages.AboutRepository, validator, logger),
		PortfolioService: NewPortfolioService(storages.SkillRepository, storages.ProjectRepository, validator, logger),
		ContactService:   NewContactService(storages.ContactRepository, notifier, validator, logger),
	}
}
