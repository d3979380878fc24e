// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MKhiriev/portfolio-cms/internal/config"
	"github.com/MKhiriev/portfolio-cms/internal/logger"
	"github.com/MKhiriev/portfolio-cms/models"
)

// Collection names, one-to-one with the entities.
const (
	collectionUsers    = "users"
	collectionOverview = "overview"
	collectionAbout    = "about"
	collectionSkills   = "skills"
	collectionProjects = "projects"
	collectionContacts = "contacts"
)

// mongoStorage is the MongoDB-backed implementation of every repository
// interface. Singleton entities are resolved by the isActive filter, not
// by any unique constraint at the storage level, matching the persisted
// layout of existing deployments.
//
// All methods honor ctx: the transport layer attaches the request-level
// timeout, and a deadline hit propagates as a store fault.
type mongoStorage struct {
	client *mongo.Client
	db     *mongo.Database

	logger *logger.Logger
}

// NewMongoStorage connects to the configured MongoDB deployment, pings it,
// and returns a ready repository set. Connection failure is fatal to
// startup: a CMS with an unreachable document store serves nothing useful.
func NewMongoStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (*mongoStorage, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Err(err).Str("func", "NewMongoStorage").Msg("error occured during mongodb connection")
		return nil, fmt.Errorf("error occured during mongodb connection: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewMongoStorage").Msg("error connecting mongodb (ping)")
		return nil, fmt.Errorf("error connecting mongodb (ping): %w", err)
	}
	log.Info().Str("func", "NewMongoStorage").Msg("connected to mongodb successfully")

	return &mongoStorage{
		client: client,
		db:     client.Database(cfg.MongoDatabase),
		logger: log,
	}, nil
}

// Close disconnects the underlying client. Called on graceful shutdown.
func (s *mongoStorage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// ── users ────────────────────────────────────────────────────────────────────

func (s *mongoStorage) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User

	err := s.db.Collection(collectionUsers).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (s *mongoStorage) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User

	err := s.db.Collection(collectionUsers).FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (s *mongoStorage) CreateUser(ctx context.Context, insert models.InsertUser) (models.User, error) {
	log := logger.FromContext(ctx)

	count, err := s.db.Collection(collectionUsers).CountDocuments(ctx, bson.M{"username": insert.Username})
	if err != nil {
		log.Err(err).Str("func", "*mongoStorage.CreateUser").Msg("error counting users by username")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if count > 0 {
		return models.User{}, ErrUsernameAlreadyExists
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

	if _, err := s.db.Collection(collectionUsers).InsertOne(ctx, user); err != nil {
		log.Err(err).Str("func", "*mongoStorage.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// ── overview / about singletons ──────────────────────────────────────────────

func (s *mongoStorage) GetOverview(ctx context.Context) (*models.Overview, error) {
	var overview models.Overview

	err := s.db.Collection(collectionOverview).FindOne(ctx, bson.M{"isActive": true}).Decode(&overview)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return &overview, nil
}

func (s *mongoStorage) UpdateOverview(ctx context.Context, insert models.InsertOverview) (models.Overview, error) {
	set := bson.M{
		"title":       insert.Title,
		"subtitle":    insert.Subtitle,
		"description": insert.Description,
		"expertise":   insert.Expertise,
		"isActive":    insert.Active(),
		"updatedAt":   time.Now(),
	}
	if insert.BackgroundImage != "" {
		set["backgroundImage"] = insert.BackgroundImage
	}

	var updated models.Overview
	err := s.db.Collection(collectionOverview).
		FindOneAndUpdate(
			ctx,
			bson.M{"isActive": true},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).
		Decode(&updated)

	if errors.Is(err, mongo.ErrNoDocuments) {
		// no active record yet: create exactly one
		created := models.Overview{
			ID:              newID(),
			Title:           insert.Title,
			Subtitle:        insert.Subtitle,
			Description:     insert.Description,
			Expertise:       insert.Expertise,
			BackgroundImage: insert.BackgroundImage,
			IsActive:        insert.Active(),
			UpdatedAt:       time.Now(),
		}
		if _, insertErr := s.db.Collection(collectionOverview).InsertOne(ctx, created); insertErr != nil {
			return models.Overview{}, fmt.Errorf("unexpected DB error: %w", insertErr)
		}
		return created, nil
	}
	if err != nil {
		return models.Overview{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (s *mongoStorage) GetAbout(ctx context.Context) (*models.About, error) {
	var about models.About

	err := s.db.Collection(collectionAbout).FindOne(ctx, bson.M{"isActive": true}).Decode(&about)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return &about, nil
}

func (s *mongoStorage) UpdateAbout(ctx context.Context, insert models.InsertAbout) (models.About, error) {
	set := bson.M{
		"title":        insert.Title,
		"content":      insert.Content,
		"experiences":  insert.Experiences,
		"achievements": insert.Achievements,
		"isActive":     insert.Active(),
		"updatedAt":    time.Now(),
	}
	if insert.ProfileImage != "" {
		set["profileImage"] = insert.ProfileImage
	}

	var updated models.About
	err := s.db.Collection(collectionAbout).
		FindOneAndUpdate(
			ctx,
			bson.M{"isActive": true},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).
		Decode(&updated)

	if errors.Is(err, mongo.ErrNoDocuments) {
		created := models.About{
			ID:           newID(),
			Title:        insert.Title,
			Content:      insert.Content,
			Experiences:  insert.Experiences,
			Achievements: insert.Achievements,
			ProfileImage: insert.ProfileImage,
			IsActive:     insert.Active(),
			UpdatedAt:    time.Now(),
		}
		if _, insertErr := s.db.Collection(collectionAbout).InsertOne(ctx, created); insertErr != nil {
			return models.About{}, fmt.Errorf("unexpected DB error: %w", insertErr)
		}
		return created, nil
	}
	if err != nil {
		return models.About{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// ── skills ───────────────────────────────────────────────────────────────────

func (s *mongoStorage) ListSkills(ctx context.Context) ([]models.Skill, error) {
	cursor, err := s.db.Collection(collectionSkills).Find(
		ctx,
		bson.M{"isActive": true},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	skills := make([]models.Skill, 0)
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return skills, nil
}

func (s *mongoStorage) GetSkill(ctx context.Context, id string) (models.Skill, error) {
	var skill models.Skill

	err := s.db.Collection(collectionSkills).FindOne(ctx, bson.M{"_id": id}).Decode(&skill)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Skill{}, ErrSkillNotFound
	}
	if err != nil {
		return models.Skill{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return skill, nil
}

func (s *mongoStorage) CreateSkill(ctx context.Context, insert models.InsertSkill) (models.Skill, error) {
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

	if _, err := s.db.Collection(collectionSkills).InsertOne(ctx, skill); err != nil {
		return models.Skill{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return skill, nil
}

func (s *mongoStorage) UpdateSkill(ctx context.Context, id string, update models.SkillUpdate) (models.Skill, error) {
	set := bson.M{"updatedAt": time.Now()}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Level != nil {
		set["level"] = *update.Level
	}
	if update.Icon != nil {
		set["icon"] = *update.Icon
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.IsActive != nil {
		set["isActive"] = *update.IsActive
	}
	if update.Order != nil {
		set["order"] = *update.Order
	}

	var updated models.Skill
	err := s.db.Collection(collectionSkills).
		FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).
		Decode(&updated)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Skill{}, ErrSkillNotFound
	}
	if err != nil {
		return models.Skill{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (s *mongoStorage) DeleteSkill(ctx context.Context, id string) error {
	result, err := s.db.Collection(collectionSkills).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrSkillNotFound
	}

	return nil
}

func (s *mongoStorage) ReorderSkills(ctx context.Context, entries []models.ReorderEntry) error {
	for _, entry := range entries {
		// best-effort: zero matches means an unknown id, skipped silently
		_, err := s.db.Collection(collectionSkills).UpdateByID(
			ctx,
			entry.ID,
			bson.M{"$set": bson.M{"order": entry.Order, "updatedAt": time.Now()}},
		)
		if err != nil {
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// ── projects ─────────────────────────────────────────────────────────────────

func (s *mongoStorage) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.findProjects(ctx, bson.M{"isActive": true})
}

func (s *mongoStorage) ListFeaturedProjects(ctx context.Context) ([]models.Project, error) {
	return s.findProjects(ctx, bson.M{"isActive": true, "featured": true})
}

func (s *mongoStorage) findProjects(ctx context.Context, filter bson.M) ([]models.Project, error) {
	cursor, err := s.db.Collection(collectionProjects).Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	projects := make([]models.Project, 0)
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return projects, nil
}

func (s *mongoStorage) GetProject(ctx context.Context, id string) (models.Project, error) {
	var project models.Project

	err := s.db.Collection(collectionProjects).FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return project, nil
}

func (s *mongoStorage) CreateProject(ctx context.Context, insert models.InsertProject) (models.Project, error) {
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

	if _, err := s.db.Collection(collectionProjects).InsertOne(ctx, project); err != nil {
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return project, nil
}

func (s *mongoStorage) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	// createdAt is deliberately absent: set once at creation, never changed
	set := bson.M{"updatedAt": time.Now()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Technologies != nil {
		set["technologies"] = *update.Technologies
	}
	if update.Images != nil {
		set["images"] = *update.Images
	}
	if update.GithubURL != nil {
		set["githubUrl"] = *update.GithubURL
	}
	if update.WebsiteURL != nil {
		set["websiteUrl"] = *update.WebsiteURL
	}
	if update.Featured != nil {
		set["featured"] = *update.Featured
	}
	if update.IsActive != nil {
		set["isActive"] = *update.IsActive
	}
	if update.Order != nil {
		set["order"] = *update.Order
	}

	var updated models.Project
	err := s.db.Collection(collectionProjects).
		FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).
		Decode(&updated)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (s *mongoStorage) DeleteProject(ctx context.Context, id string) error {
	result, err := s.db.Collection(collectionProjects).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func (s *mongoStorage) ReorderProjects(ctx context.Context, entries []models.ReorderEntry) error {
	for _, entry := range entries {
		_, err := s.db.Collection(collectionProjects).UpdateByID(
			ctx,
			entry.ID,
			bson.M{"$set": bson.M{"order": entry.Order, "updatedAt": time.Now()}},
		)
		if err != nil {
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// ── contacts ─────────────────────────────────────────────────────────────────

func (s *mongoStorage) ListContacts(ctx context.Context) ([]models.Contact, error) {
	cursor, err := s.db.Collection(collectionContacts).Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	contacts := make([]models.Contact, 0)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return contacts, nil
}

func (s *mongoStorage) GetContact(ctx context.Context, id string) (models.Contact, error) {
	var contact models.Contact

	err := s.db.Collection(collectionContacts).FindOne(ctx, bson.M{"_id": id}).Decode(&contact)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return contact, nil
}

func (s *mongoStorage) CreateContact(ctx context.Context, insert models.InsertContact) (models.Contact, error) {
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

	if _, err := s.db.Collection(collectionContacts).InsertOne(ctx, contact); err != nil {
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return contact, nil
}

func (s *mongoStorage) MarkContactRead(ctx context.Context, id string) (models.Contact, error) {
	return s.flipContactFlag(ctx, id, "isRead")
}

func (s *mongoStorage) MarkTelegramSent(ctx context.Context, id string) (models.Contact, error) {
	return s.flipContactFlag(ctx, id, "telegramSent")
}

// flipContactFlag sets the named boolean flag to true. The flags are
// monotonic: nothing in the contract ever sets them back to false.
func (s *mongoStorage) flipContactFlag(ctx context.Context, id string, flag string) (models.Contact, error) {
	var updated models.Contact

	err := s.db.Collection(collectionContacts).
		FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{flag: true}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).
		Decode(&updated)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}
