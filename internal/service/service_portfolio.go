package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/portfolio-cms/internal/logger"
	"github.com/MKhiriev/portfolio-cms/internal/store"
	"github.com/MKhiriev/portfolio-cms/internal/validators"
	"github.com/MKhiriev/portfolio-cms/models"
)

// portfolioService is the concrete implementation of PortfolioService.
// Create and update payloads are validated before reaching storage;
// not-found sentinels from the repositories pass through untouched so the
// transport layer can map them to 404.
type portfolioService struct {
	skillRepository   store.SkillRepository
	projectRepository store.ProjectRepository

	validator validators.Validator
	logger    *logger.Logger
}

// NewPortfolioService constructs a PortfolioService wired to the skill and
// project repositories.
func NewPortfolioService(
	skillRepository store.SkillRepository,
	projectRepository store.ProjectRepository,
	validator validators.Validator,
	logger *logger.Logger,
) PortfolioService {
	return &portfolioService{
		skillRepository:   skillRepository,
		projectRepository: projectRepository,
		validator:         validator,
		logger:            logger,
	}
}

// ── skills ───────────────────────────────────────────────────────────────────

func (p *portfolioService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	skills, err := p.skillRepository.ListSkills(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("skill list failed")
		return nil, fmt.Errorf("skill list failed: %w", err)
	}

	return skills, nil
}

func (p *portfolioService) CreateSkill(ctx context.Context, insert models.InsertSkill) (models.Skill, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, insert); err != nil {
		log.Debug().Err(err).Msg("invalid skill payload")
		return models.Skill{}, err
	}

	skill, err := p.skillRepository.CreateSkill(ctx, insert)
	if err != nil {
		log.Err(err).Msg("skill creation failed")
		return models.Skill{}, fmt.Errorf("skill creation failed: %w", err)
	}

	return skill, nil
}

func (p *portfolioService) UpdateSkill(ctx context.Context, id string, update models.SkillUpdate) (models.Skill, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Msg("invalid skill update payload")
		return models.Skill{}, err
	}

	skill, err := p.skillRepository.UpdateSkill(ctx, id, update)
	if err != nil {
		return models.Skill{}, err
	}

	return skill, nil
}

func (p *portfolioService) DeleteSkill(ctx context.Context, id string) error {
	return p.skillRepository.DeleteSkill(ctx, id)
}

func (p *portfolioService) ReorderSkills(ctx context.Context, entries []models.ReorderEntry) error {
	if err := p.skillRepository.ReorderSkills(ctx, entries); err != nil {
		logger.FromContext(ctx).Err(err).Msg("skill reorder failed")
		return fmt.Errorf("skill reorder failed: %w", err)
	}

	return nil
}

// ── projects ─────────────────────────────────────────────────────────────────

func (p *portfolioService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := p.projectRepository.ListProjects(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("project list failed")
		return nil, fmt.Errorf("project list failed: %w", err)
	}

	return projects, nil
}

func (p *portfolioService) ListFeaturedProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := p.projectRepository.ListFeaturedProjects(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("featured project list failed")
		return nil, fmt.Errorf("featured project list failed: %w", err)
	}

	return projects, nil
}

func (p *portfolioService) CreateProject(ctx context.Context, insert models.InsertProject) (models.Project, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, insert); err != nil {
		log.Debug().Err(err).Msg("invalid project payload")
		return models.Project{}, err
	}

	project, err := p.projectRepository.CreateProject(ctx, insert)
	if err != nil {
		log.Err(err).Msg("project creation failed")
		return models.Project{}, fmt.Errorf("project creation failed: %w", err)
	}

	return project, nil
}

func (p *portfolioService) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Msg("invalid project update payload")
		return models.Project{}, err
	}

	project, err := p.projectRepository.UpdateProject(ctx, id, update)
	if err != nil {
		return models.Project{}, err
	}

	return project, nil
}

func (p *portfolioService) DeleteProject(ctx context.Context, id string) error {
	return p.projectRepository.DeleteProject(ctx, id)
}

func (p *portfolioService) ReorderProjects(ctx context.Context, entries []models.ReorderEntry) error {
	if err := p.projectRepository.ReorderProjects(ctx, entries); err != nil {
		logger.FromContext(ctx).Err(err).Msg("project reorder failed")
		return fmt.Errorf("project reorder failed: %w", err)
	}

	return nil
}
