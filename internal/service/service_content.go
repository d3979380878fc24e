package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/portfolio-cms/internal/logger"
	"github.com/MKhiriev/portfolio-cms/internal/store"
	"github.com/MKhiriev/portfolio-cms/internal/validators"
	"github.com/MKhiriev/portfolio-cms/models"
)

// contentService is the concrete implementation of ContentService.
// It fronts the two singleton repositories and runs schema validation
// before any write reaches storage.
type contentService struct {
	overviewRepository store.OverviewRepository
	aboutRepository    store.AboutRepository

	validator validators.Validator
	logger    *logger.Logger
}

// NewContentService constructs a ContentService wired to the singleton
// repositories.
func NewContentService(
	overviewRepository store.OverviewRepository,
	aboutRepository store.AboutRepository,
	validator validators.Validator,
	logger *logger.Logger,
) ContentService {
	return &contentService{
		overviewRepository: overviewRepository,
		aboutRepository:    aboutRepository,
		validator:          validator,
		logger:             logger,
	}
}

// GetOverview returns the active overview record, or nil when the section
// has never been saved. Absence is not an error.
func (c *contentService) GetOverview(ctx context.Context) (*models.Overview, error) {
	overview, err := c.overviewRepository.GetOverview(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("overview fetch failed")
		return nil, fmt.Errorf("overview fetch failed: %w", err)
	}

	return overview, nil
}

// UpdateOverview validates the payload and upserts the singleton.
// Given valid input it always succeeds; it never reports "not found".
func (c *contentService) UpdateOverview(ctx context.Context, insert models.InsertOverview) (models.Overview, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, insert); err != nil {
		log.Debug().Err(err).Msg("invalid overview payload")
		return models.Overview{}, err
	}

	updated, err := c.overviewRepository.UpdateOverview(ctx, insert)
	if err != nil {
		log.Err(err).Msg("overview update failed")
		return models.Overview{}, fmt.Errorf("overview update failed: %w", err)
	}

	return updated, nil
}

// GetAbout returns the active about record, or nil when absent.
func (c *contentService) GetAbout(ctx context.Context) (*models.About, error) {
	about, err := c.aboutRepository.GetAbout(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("about fetch failed")
		return nil, fmt.Errorf("about fetch failed: %w", err)
	}

	return about, nil
}

// UpdateAbout validates the payload and upserts the singleton.
func (c *contentService) UpdateAbout(ctx context.Context, insert models.InsertAbout) (models.About, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, insert); err != nil {
		log.Debug().Err(err).Msg("invalid about payload")
		return models.About{}, err
	}

	updated, err := c.aboutRepository.UpdateAbout(ctx, insert)
	if err != nil {
		log.Err(err).Msg("about update failed")
		return models.About{}, fmt.Errorf("about update failed: %w", err)
	}

	return updated, nil
}
