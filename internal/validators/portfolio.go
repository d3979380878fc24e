// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"net/url"

	"github.com/MKhiriev/portfolio-cms/models"
)

// Minimum lengths enforced on long-form text fields. Short-form required
// strings only need to be non-empty.
const (
	minLongTextLen = 10
	minPasswordLen = 6
)

// allowedSkillLevels is the exhaustive set of Level values accepted for
// skills. Any other value is rejected.
var allowedSkillLevels = []string{
	models.LevelBeginner,
	models.LevelIntermediate,
	models.LevelAdvanced,
	models.LevelExpert,
}

// PortfolioValidator implements [Validator] for every CMS payload type:
// insert payloads for all six entities plus the partial-update payloads
// for skills and projects.
//
// Both value and pointer forms of each payload are accepted.
type PortfolioValidator struct {
}

// NewPortfolioValidator constructs a new PortfolioValidator and returns it
// as the Validator interface.
func NewPortfolioValidator() Validator {
	return &PortfolioValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known payload.
func (v *PortfolioValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.InsertOverview:
		return v.validateOverview(value)
	case *models.InsertOverview:
		return v.validateOverview(*value)

	case models.InsertAbout:
		return v.validateAbout(value)
	case *models.InsertAbout:
		return v.validateAbout(*value)

	case models.InsertSkill:
		return v.validateSkill(value)
	case *models.InsertSkill:
		return v.validateSkill(*value)

	case models.SkillUpdate:
		return v.validateSkillUpdate(value)
	case *models.SkillUpdate:
		return v.validateSkillUpdate(*value)

	case models.InsertProject:
		return v.validateProject(value)
	case *models.InsertProject:
		return v.validateProject(*value)

	case models.ProjectUpdate:
		return v.validateProjectUpdate(value)
	case *models.ProjectUpdate:
		return v.validateProjectUpdate(*value)

	case models.InsertContact:
		return v.validateContact(value)
	case *models.InsertContact:
		return v.validateContact(*value)

	case models.InsertUser:
		return v.validateUser(value)
	case *models.InsertUser:
		return v.validateUser(*value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *PortfolioValidator) validateOverview(o models.InsertOverview) error {
	verr := new(ValidationError)

	if o.Title == "" {
		verr.add("title", "title is required")
	}
	if o.Subtitle == "" {
		verr.add("subtitle", "subtitle is required")
	}
	if o.Description == "" {
		verr.add("description", "description is required")
	}
	if len(o.Expertise) == 0 {
		verr.add("expertise", "at least one expertise entry is required")
	}

	return verr.orNil()
}

func (v *PortfolioValidator) validateAbout(a models.InsertAbout) error {
	verr := new(ValidationError)

	if a.Title == "" {
		verr.add("title", "title is required")
	}
	if len(a.Content) < minLongTextLen {
		verr.add("content", fmt.Sprintf("content must be at least %d characters", minLongTextLen))
	}
	if len(a.Experiences) == 0 {
		verr.add("experiences", "at least one experience entry is required")
	}
	if len(a.Achievements) == 0 {
		verr.add("achievements", "at least one achievement entry is required")
	}

	return verr.orNil()
}

func (v *PortfolioValidator) validateSkill(s models.InsertSkill) error {
	verr := new(ValidationError)

	if s.Category == "" {
		verr.add("category", "category is required")
	}
	if s.Name == "" {
		verr.add("name", "name is required")
	}
	if !validSkillLevel(s.Level) {
		verr.add("level", "level must be one of Beginner, Intermediate, Advanced, Expert")
	}

	return verr.orNil()
}

func (v *PortfolioValidator) validateSkillUpdate(s models.SkillUpdate) error {
	verr := new(ValidationError)

	if s.Category != nil && *s.Category == "" {
		verr.add("category", "category cannot be empty")
	}
	if s.Name != nil && *s.Name == "" {
		verr.add("name", "name cannot be empty")
	}
	if s.Level != nil && !validSkillLevel(*s.Level) {
		verr.add("level", "level must be one of Beginner, Intermediate, Advanced, Expert")
	}

	return verr.orNil()
}

func (v *PortfolioValidator) validateProject(p models.InsertProject) error {
	verr := new(ValidationError)

	if p.Title == "" {
		verr.add("title", "title is required")
	}
	if len(p.Description) < minLongTextLen {
		verr.add("description", fmt.Sprintf("description must be at least %d characters", minLongTextLen))
	}
	if len(p.Technologies) == 0 {
		verr.add("technologies", "at least one technology is required")
	}
	if !validOptionalURL(p.GithubURL) {
		verr.add("githubUrl", "githubUrl must be a valid URL")
	}
	if !validOptionalURL(p.WebsiteURL) {
		verr.add("websiteUrl", "websiteUrl must be a valid URL")
	}

	return verr.orNil()
}

func (v *PortfolioValidator) validateProjectUpdate(p models.ProjectUpdate) error {
	verr := new(ValidationError)

	if p.Title != nil && *p.Title == "" {
		verr.add("title", "title cannot be empty")
	}
	if p.Description != nil && len(*p.Description) < minLongTextLen {
		verr.add("description", fmt.Sprintf("description must be at least %d characters", minLongTextLen))
	}
	if p.Technologies != nil && len(*p.Technologies) == 0 {
		verr.add("technologies", "at least one technology is required")
	}
	if p.GithubURL != nil && !validOptionalURL(*p.GithubURL) {
		verr.add("githubUrl", "githubUrl must be a valid URL")
	}
	if p.WebsiteURL != nil && !validOptionalURL(*p.WebsiteURL) {
		verr.add("websiteUrl", "websiteUrl must be a valid URL")
	}

	return verr.orNil()
}

func (v *PortfolioValidator) validateContact(c models.InsertContact) error {
	verr := new(ValidationError)

	if c.Name == "" {
		verr.add("name", "name is required")
	}
	if !validEmail(c.Email) {
		verr.add("email", "email must be a valid address")
	}
	if c.Subject == "" {
		verr.add("subject", "subject is required")
	}
	if len(c.Message) < minLongTextLen {
		verr.add("message", fmt.Sprintf("message must be at least %d characters", minLongTextLen))
	}

	return verr.orNil()
}

func (v *PortfolioValidator) validateUser(u models.InsertUser) error {
	verr := new(ValidationError)

	if u.Username == "" {
		verr.add("username", "username is required")
	}
	if len(u.Password) < minPasswordLen {
		verr.add("password", fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	if u.Name == "" {
		verr.add("name", "name is required")
	}
	if !validEmail(u.Email) {
		verr.add("email", "email must be a valid address")
	}

	return verr.orNil()
}

func validSkillLevel(level string) bool {
	for _, allowed := range allowedSkillLevels {
		if level == allowed {
			return true
		}
	}
	return false
}

func validEmail(address string) bool {
	if address == "" {
		return false
	}
	parsed, err := mail.ParseAddress(address)
	return err == nil && parsed.Address == address
}

// validOptionalURL accepts an empty string (field omitted) or an absolute
// http(s) URL, matching the original form contract.
func validOptionalURL(raw string) bool {
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
