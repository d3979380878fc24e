package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/portfolio-cms/internal/config"
	"github.com/MKhiriev/portfolio-cms/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
// Both backends populate all fields from a single underlying store, so the
// route layer never knows which implementation it talks to.
type Storages struct {
	UserRepository     UserRepository
	OverviewRepository OverviewRepository
	AboutRepository    AboutRepository
	SkillRepository    SkillRepository
	ProjectRepository  ProjectRepository
	ContactRepository  ContactRepository
}

// NewStorages constructs the repository set for the backend selected in
// cfg.Storage.Backend:
//   - "memory"  — seeded in-process store, no external dependencies;
//   - "mongodb" — connects and pings the configured MongoDB deployment.
//
// Returns ErrUnknownBackend for any other backend name.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		memory := NewMemoryStorage(cfg.App, log)
		return &Storages{
			UserRepository:     memory,
			OverviewRepository: memory,
			AboutRepository:    memory,
			SkillRepository:    memory,
			ProjectRepository:  memory,
			ContactRepository:  memory,
		}, nil

	case config.BackendMongoDB:
		mongo, err := NewMongoStorage(ctx, cfg.Storage, log)
		if err != nil {
			return nil, fmt.Errorf("error creating mongodb storage: %w", err)
		}
		return &Storages{
			UserRepository:     mongo,
			OverviewRepository: mongo,
			AboutRepository:    mongo,
			SkillRepository:    mongo,
			ProjectRepository:  mongo,
			ContactRepository:  mongo,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Storage.Backend)
	}
}
