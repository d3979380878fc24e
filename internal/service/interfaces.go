package service

import (
	"context"

	"github.com/MKhiriev/portfolio-cms/models"
)

// AuthService authenticates the CMS admin.
type AuthService interface {
	// Login compares the supplied credentials against the configured
	// admin username/password. Returns the user fragment for the login
	// response, or ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, creds models.LoginRequest) (models.LoginUser, error)
}

// ContentService manages the two singleton sections of the public page.
type ContentService interface {
	GetOverview(ctx context.Context) (*models.Overview, error)
	UpdateOverview(ctx context.Context, insert models.InsertOverview) (models.Overview, error)

	GetAbout(ctx context.Context) (*models.About, error)
	UpdateAbout(ctx context.Context, insert models.InsertAbout) (models.About, error)
}

// PortfolioService manages skill and project collections.
type PortfolioService interface {
	ListSkills(ctx context.Context) ([]models.Skill, error)
	CreateSkill(ctx context.Context, insert models.InsertSkill) (models.Skill, error)
	UpdateSkill(ctx context.Context, id string, update models.SkillUpdate) (models.Skill, error)
	DeleteSkill(ctx context.Context, id string) error
	ReorderSkills(ctx context.Context, entries []models.ReorderEntry) error

	ListProjects(ctx context.Context) ([]models.Project, error)
	ListFeaturedProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, insert models.InsertProject) (models.Project, error)
	UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	ReorderProjects(ctx context.Context, entries []models.ReorderEntry) error
}

// ContactService manages the contact-message inbox.
type ContactService interface {
	ListContacts(ctx context.Context) ([]models.Contact, error)

	// SubmitContact validates and stores a new message, then attempts the
	// Telegram notification best-effort. The returned record carries
	// telegramSent=true only when delivery succeeded.
	SubmitContact(ctx context.Context, insert models.InsertContact) (models.Contact, error)

	MarkContactRead(ctx context.Context, id string) (models.Contact, error)
}
