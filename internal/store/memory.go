// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/portfolio-cms/internal/config"
	"github.com/MKhiriev/portfolio-cms/internal/logger"
	"github.com/MKhiriev/portfolio-cms/models"
)

// memoryStorage is the in-process implementation of every repository
// interface. It backs all entities with keyed maps seeded once at
// construction with illustrative sample content.
//
// This is explicitly a development/demo backing store: nothing survives a
// process restart. All collections are guarded by a single RWMutex because
// the HTTP runtime serves requests on parallel goroutines.
type memoryStorage struct {
	mu sync.RWMutex

	users    map[string]models.User
	overview *models.Overview
	about    *models.About
	skills   map[string]models.Skill
	projects map[string]models.Project
	contacts map[string]models.Contact

	logger *logger.Logger
}

// NewMemoryStorage constructs the seeded in-memory store. The admin
// account is created from cfg (env-provided credentials with the
// admin/admin123 fallback already applied by the config layer).
func NewMemoryStorage(cfg config.App, log *logger.Logger) *memoryStorage {
	log.Debug().Msg("creating in-memory storage")

	m := &memoryStorage{
		users:    make(map[string]models.User),
		skills:   make(map[string]models.Skill),
		projects: make(map[string]models.Project),
		contacts: make(map[string]models.Contact),
		logger:   log,
	}
	m.seed(cfg)

	return m
}

// ── users ────────────────────────────────────────────────────────────────────

func (m *memoryStorage) GetUser(ctx context.Context, id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

func (m *memoryStorage) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (m *memoryStorage) CreateUser(ctx context.Context, insert models.InsertUser) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == insert.Username {
			return models.User{}, ErrUsernameAlreadyExists
		}
	}

	role := insert.Role
	if role == "" {
		role = models.RoleAdmin
	}

	user := models.User{
		ID:       newID(),
		Username: insert.Username,
		Password: insert.Password,
		Name:     insert.Name,
		Email:    insert.Email,
		Role:     role,
	}
	m.users[user.ID] = user

	return user, nil
}

// ── overview / about singletons ──────────────────────────────────────────────

func (m *memoryStorage) GetOverview(ctx context.Context) (*models.Overview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.overview == nil {
		return nil, nil
	}

	overview := *m.overview
	return &overview, nil
}

func (m *memoryStorage) UpdateOverview(ctx context.Context, insert models.InsertOverview) (models.Overview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// keep the existing id so the singleton is replaced, never duplicated
	id := newID()
	if m.overview != nil {
		id = m.overview.ID
	}

	updated := models.Overview{
		ID:              id,
		Title:           insert.Title,
		Subtitle:        insert.Subtitle,
		Description:     insert.Description,
		Expertise:       insert.Expertise,
		BackgroundImage: insert.BackgroundImage,
		IsActive:        insert.Active(),
		UpdatedAt:       time.Now(),
	}
	m.overview = &updated

	return updated, nil
}

func (m *memoryStorage) GetAbout(ctx context.Context) (*models.About, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.about == nil {
		return nil, nil
	}

	about := *m.about
	return &about, nil
}

func (m *memoryStorage) UpdateAbout(ctx context.Context, insert models.InsertAbout) (models.About, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := newID()
	if m.about != nil {
		id = m.about.ID
	}

	updated := models.About{
		ID:           id,
		Title:        insert.Title,
		Content:      insert.Content,
		Experiences:  insert.Experiences,
		Achievements: insert.Achievements,
		ProfileImage: insert.ProfileImage,
		IsActive:     insert.Active(),
		UpdatedAt:    time.Now(),
	}
	m.about = &updated

	return updated, nil
}

// ── skills ───────────────────────────────────────────────────────────────────

func (m *memoryStorage) ListSkills(ctx context.Context) ([]models.Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	skills := make([]models.Skill, 0, len(m.skills))
	for _, skill := range m.skills {
		skills = append(skills, skill)
	}

	// lexicographic on purpose, see models.Skill.Order
	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].Order < skills[j].Order
	})

	return skills, nil
}

func (m *memoryStorage) GetSkill(ctx context.Context, id string) (models.Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	skill, ok := m.skills[id]
	if !ok {
		return models.Skill{}, ErrSkillNotFound
	}

	return skill, nil
}

func (m *memoryStorage) CreateSkill(ctx context.Context, insert models.InsertSkill) (models.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order := insert.Order
	if order == "" {
		order = "0"
	}

	isActive := true
	if insert.IsActive != nil {
		isActive = *insert.IsActive
	}

	skill := models.Skill{
		ID:          newID(),
		Category:    insert.Category,
		Name:        insert.Name,
		Level:       insert.Level,
		Icon:        insert.Icon,
		Description: insert.Description,
		IsActive:    isActive,
		Order:       order,
		UpdatedAt:   time.Now(),
	}
	m.skills[skill.ID] = skill

	return skill, nil
}

func (m *memoryStorage) UpdateSkill(ctx context.Context, id string, update models.SkillUpdate) (models.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	skill, ok := m.skills[id]
	if !ok {
		return models.Skill{}, ErrSkillNotFound
	}

	if update.Category != nil {
		skill.Category = *update.Category
	}
	if update.Name != nil {
		skill.Name = *update.Name
	}
	if update.Level != nil {
		skill.Level = *update.Level
	}
	if update.Icon != nil {
		skill.Icon = *update.Icon
	}
	if update.Description != nil {
		skill.Description = *update.Description
	}
	if update.IsActive != nil {
		skill.IsActive = *update.IsActive
	}
	if update.Order != nil {
		skill.Order = *update.Order
	}
	skill.UpdatedAt = time.Now()

	m.skills[id] = skill
	return skill, nil
}

func (m *memoryStorage) DeleteSkill(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.skills[id]; !ok {
		return ErrSkillNotFound
	}

	delete(m.skills, id)
	return nil
}

func (m *memoryStorage) ReorderSkills(ctx context.Context, entries []models.ReorderEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, entry := range entries {
		skill, ok := m.skills[entry.ID]
		if !ok {
			// best-effort: unknown ids are skipped silently
			continue
		}

		skill.Order = entry.Order
		skill.UpdatedAt = time.Now()
		m.skills[entry.ID] = skill
	}

	return nil
}

// ── projects ─────────────────────────────────────────────────────────────────

func (m *memoryStorage) ListProjects(ctx context.Context) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	projects := make([]models.Project, 0, len(m.projects))
	for _, project := range m.projects {
		projects = append(projects, project)
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Order < projects[j].Order
	})

	return projects, nil
}

func (m *memoryStorage) ListFeaturedProjects(ctx context.Context) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	projects := make([]models.Project, 0, len(m.projects))
	for _, project := range m.projects {
		if project.Featured && project.IsActive {
			projects = append(projects, project)
		}
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Order < projects[j].Order
	})

	return projects, nil
}

func (m *memoryStorage) GetProject(ctx context.Context, id string) (models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	project, ok := m.projects[id]
	if !ok {
		return models.Project{}, ErrProjectNotFound
	}

	return project, nil
}

func (m *memoryStorage) CreateProject(ctx context.Context, insert models.InsertProject) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order := insert.Order
	if order == "" {
		order = "0"
	}

	isActive := true
	if insert.IsActive != nil {
		isActive = *insert.IsActive
	}

	images := insert.Images
	if images == nil {
		images = []string{}
	}

	now := time.Now()
	project := models.Project{
		ID:           newID(),
		Title:        insert.Title,
		Description:  insert.Description,
		Technologies: insert.Technologies,
		Images:       images,
		GithubURL:    insert.GithubURL,
		WebsiteURL:   insert.WebsiteURL,
		Featured:     insert.Featured,
		IsActive:     isActive,
		Order:        order,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.projects[project.ID] = project

	return project, nil
}

func (m *memoryStorage) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	project, ok := m.projects[id]
	if !ok {
		return models.Project{}, ErrProjectNotFound
	}

	if update.Title != nil {
		project.Title = *update.Title
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.Technologies != nil {
		project.Technologies = *update.Technologies
	}
	if update.Images != nil {
		project.Images = *update.Images
	}
	if update.GithubURL != nil {
		project.GithubURL = *update.GithubURL
	}
	if update.WebsiteURL != nil {
		project.WebsiteURL = *update.WebsiteURL
	}
	if update.Featured != nil {
		project.Featured = *update.Featured
	}
	if update.IsActive != nil {
		project.IsActive = *update.IsActive
	}
	if update.Order != nil {
		project.Order = *update.Order
	}
	// CreatedAt is never touched after creation
	project.UpdatedAt = time.Now()

	m.projects[id] = project
	return project, nil
}

func (m *memoryStorage) DeleteProject(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[id]; !ok {
		return ErrProjectNotFound
	}

	delete(m.projects, id)
	return nil
}

func (m *memoryStorage) ReorderProjects(ctx context.Context, entries []models.ReorderEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, entry := range entries {
		project, ok := m.projects[entry.ID]
		if !ok {
			continue
		}

		project.Order = entry.Order
		project.UpdatedAt = time.Now()
		m.projects[entry.ID] = project
	}

	return nil
}

// ── contacts ─────────────────────────────────────────────────────────────────

func (m *memoryStorage) ListContacts(ctx context.Context) ([]models.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	contacts := make([]models.Contact, 0, len(m.contacts))
	for _, contact := range m.contacts {
		contacts = append(contacts, contact)
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})

	return contacts, nil
}

func (m *memoryStorage) GetContact(ctx context.Context, id string) (models.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	contact, ok := m.contacts[id]
	if !ok {
		return models.Contact{}, ErrContactNotFound
	}

	return contact, nil
}

func (m *memoryStorage) CreateContact(ctx context.Context, insert models.InsertContact) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	contact := models.Contact{
		ID:           newID(),
		Name:         insert.Name,
		Email:        insert.Email,
		Subject:      insert.Subject,
		Message:      insert.Message,
		IsRead:       false,
		TelegramSent: false,
		CreatedAt:    time.Now(),
	}
	m.contacts[contact.ID] = contact

	return contact, nil
}

func (m *memoryStorage) MarkContactRead(ctx context.Context, id string) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	contact, ok := m.contacts[id]
	if !ok {
		return models.Contact{}, ErrContactNotFound
	}

	contact.IsRead = true
	m.contacts[id] = contact

	return contact, nil
}

func (m *memoryStorage) MarkTelegramSent(ctx context.Context, id string) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	contact, ok := m.contacts[id]
	if !ok {
		return models.Contact{}, ErrContactNotFound
	}

	contact.TelegramSent = true
	m.contacts[id] = contact

	return contact, nil
}
