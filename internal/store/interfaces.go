// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/portfolio-cms/models"
)

// UserRepository manages CMS admin accounts.
type UserRepository interface {
	// GetUser returns the account with the given id,
	// or ErrUserNotFound.
	GetUser(ctx context.Context, id string) (models.User, error)

	// GetUserByUsername returns the account with the given username,
	// or ErrUserNotFound.
	GetUserByUsername(ctx context.Context, username string) (models.User, error)

	// CreateUser persists a new account with a generated id and returns
	// the stored record.
	CreateUser(ctx context.Context, insert models.InsertUser) (models.User, error)
}

// OverviewRepository manages the hero-section singleton.
type OverviewRepository interface {
	// GetOverview returns the active record, or nil when none exists.
	// Absence is not an error.
	GetOverview(ctx context.Context) (*models.Overview, error)

	// UpdateOverview replaces the active record in place, creating it
	// when absent, and refreshes UpdatedAt. At most one active record
	// exists after the call.
	UpdateOverview(ctx context.Context, insert models.InsertOverview) (models.Overview, error)
}

// AboutRepository manages the about-section singleton.
type AboutRepository interface {
	// GetAbout returns the active record, or nil when none exists.
	GetAbout(ctx context.Context) (*models.About, error)

	// UpdateAbout upserts the singleton, same contract as UpdateOverview.
	UpdateAbout(ctx context.Context, insert models.InsertAbout) (models.About, error)
}

// SkillRepository manages skill entries.
type SkillRepository interface {
	// ListSkills returns skills ordered ascending by the Order field
	// (lexicographic string comparison).
	ListSkills(ctx context.Context) ([]models.Skill, error)

	// GetSkill returns the skill with the given id, or ErrSkillNotFound.
	GetSkill(ctx context.Context, id string) (models.Skill, error)

	// CreateSkill persists a new skill with a generated id,
	// order defaulting to "0" and isActive defaulting to true.
	CreateSkill(ctx context.Context, insert models.InsertSkill) (models.Skill, error)

	// UpdateSkill applies the non-nil fields of update and refreshes
	// UpdatedAt. Returns ErrSkillNotFound when id is absent.
	UpdateSkill(ctx context.Context, id string, update models.SkillUpdate) (models.Skill, error)

	// DeleteSkill removes the skill outright.
	// Returns ErrSkillNotFound when id is absent.
	DeleteSkill(ctx context.Context, id string) error

	// ReorderSkills applies new order values best-effort; entries with
	// unknown ids are skipped silently.
	ReorderSkills(ctx context.Context, entries []models.ReorderEntry) error
}

// ProjectRepository manages portfolio projects.
type ProjectRepository interface {
	// ListProjects returns projects ordered ascending by Order.
	ListProjects(ctx context.Context) ([]models.Project, error)

	// ListFeaturedProjects returns projects where featured && isActive,
	// same ordering rule.
	ListFeaturedProjects(ctx context.Context) ([]models.Project, error)

	// GetProject returns the project with the given id,
	// or ErrProjectNotFound.
	GetProject(ctx context.Context, id string) (models.Project, error)

	// CreateProject persists a new project with a generated id and
	// CreatedAt set once, never changed afterwards.
	CreateProject(ctx context.Context, insert models.InsertProject) (models.Project, error)

	// UpdateProject applies the non-nil fields of update and refreshes
	// UpdatedAt. Returns ErrProjectNotFound when id is absent.
	UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error)

	// DeleteProject removes the project outright.
	// Returns ErrProjectNotFound when id is absent.
	DeleteProject(ctx context.Context, id string) error

	// ReorderProjects applies new order values best-effort; unknown ids
	// are skipped silently.
	ReorderProjects(ctx context.Context, entries []models.ReorderEntry) error
}

// ContactRepository manages the contact-message inbox.
type ContactRepository interface {
	// ListContacts returns all messages, newest first by CreatedAt.
	ListContacts(ctx context.Context) ([]models.Contact, error)

	// GetContact returns the message with the given id,
	// or ErrContactNotFound.
	GetContact(ctx context.Context, id string) (models.Contact, error)

	// CreateContact persists a new message, forcing IsRead=false,
	// TelegramSent=false and a server-set CreatedAt.
	CreateContact(ctx context.Context, insert models.InsertContact) (models.Contact, error)

	// MarkContactRead flips IsRead to true (idempotent).
	// Returns ErrContactNotFound when id is absent.
	MarkContactRead(ctx context.Context, id string) (models.Contact, error)

	// MarkTelegramSent flips TelegramSent to true (idempotent).
	// Returns ErrContactNotFound when id is absent.
	MarkTelegramSent(ctx context.Context, id string) (models.Contact, error)
}
