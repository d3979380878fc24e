package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/portfolio-cms/models"
)

func boolPtr(b bool) *bool       { return &b }
func strPtr(s string) *string    { return &s }
func slicePtr(s []string) *[]string { return &s }

// fieldNames extracts the violated field names from a validation error.
func fieldNames(t *testing.T, err error) []string {
	t.Helper()

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	names := make([]string, 0, len(validationErr.Fields))
	for _, f := range validationErr.Fields {
		names = append(names, f.Field)
	}
	return names
}

// ---- Overview ----

func TestValidateOverview(t *testing.T) {
	valid := models.InsertOverview{
		Title:       "Full Stack Developer",
		Subtitle:    "Crafting digital experiences",
		Description: "I build things for the web",
		Expertise:   []string{"React", "Go"},
	}

	tests := []struct {
		name       string
		mutate     func(*models.InsertOverview)
		wantFields []string
	}{
		{
			name:   "valid payload",
			mutate: func(o *models.InsertOverview) {},
		},
		{
			name:       "missing title",
			mutate:     func(o *models.InsertOverview) { o.Title = "" },
			wantFields: []string{"title"},
		},
		{
			name:       "missing subtitle",
			mutate:     func(o *models.InsertOverview) { o.Subtitle = "" },
			wantFields: []string{"subtitle"},
		},
		{
			name:       "empty expertise list",
			mutate:     func(o *models.InsertOverview) { o.Expertise = nil },
			wantFields: []string{"expertise"},
		},
		{
			name: "everything missing",
			mutate: func(o *models.InsertOverview) {
				*o = models.InsertOverview{}
			},
			wantFields: []string{"title", "subtitle", "description", "expertise"},
		},
	}

	v := NewPortfolioValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := valid
			tt.mutate(&payload)

			err := v.Validate(context.Background(), payload)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			assert.ElementsMatch(t, tt.wantFields, fieldNames(t, err))
		})
	}
}

// ---- Skills ----

func TestValidateSkill(t *testing.T) {
	valid := models.InsertSkill{
		Category: "Backend",
		Name:     "Go",
		Level:    models.LevelExpert,
	}

	tests := []struct {
		name       string
		mutate     func(*models.InsertSkill)
		wantFields []string
	}{
		{
			name:   "valid payload",
			mutate: func(s *models.InsertSkill) {},
		},
		{
			name:   "explicit isActive false is allowed",
			mutate: func(s *models.InsertSkill) { s.IsActive = boolPtr(false) },
		},
		{
			name:       "unknown level",
			mutate:     func(s *models.InsertSkill) { s.Level = "Guru" },
			wantFields: []string{"level"},
		},
		{
			name:       "empty level",
			mutate:     func(s *models.InsertSkill) { s.Level = "" },
			wantFields: []string{"level"},
		},
		{
			name:       "missing category and name",
			mutate:     func(s *models.InsertSkill) { s.Category = ""; s.Name = "" },
			wantFields: []string{"category", "name"},
		},
	}

	v := NewPortfolioValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := valid
			tt.mutate(&payload)

			err := v.Validate(context.Background(), payload)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			assert.ElementsMatch(t, tt.wantFields, fieldNames(t, err))
		})
	}
}

func TestValidateSkillUpdate(t *testing.T) {
	v := NewPortfolioValidator()

	t.Run("nil fields are skipped", func(t *testing.T) {
		assert.NoError(t, v.Validate(context.Background(), models.SkillUpdate{}))
	})

	t.Run("set fields are checked", func(t *testing.T) {
		err := v.Validate(context.Background(), models.SkillUpdate{
			Name:  strPtr(""),
			Level: strPtr("Novice"),
		})
		assert.ElementsMatch(t, []string{"name", "level"}, fieldNames(t, err))
	})

	t.Run("valid partial update", func(t *testing.T) {
		assert.NoError(t, v.Validate(context.Background(), models.SkillUpdate{
			Level: strPtr(models.LevelBeginner),
			Order: strPtr("3"),
		}))
	})
}

// ---- Projects ----

func TestValidateProject(t *testing.T) {
	valid := models.InsertProject{
		Title:        "Space Portfolio",
		Description:  "A cosmic-themed portfolio website",
		Technologies: []string{"React", "MongoDB"},
		GithubURL:    "https://github.com/example/space",
	}

	tests := []struct {
		name       string
		mutate     func(*models.InsertProject)
		wantFields []string
	}{
		{
			name:   "valid payload",
			mutate: func(p *models.InsertProject) {},
		},
		{
			name:   "empty urls are allowed",
			mutate: func(p *models.InsertProject) { p.GithubURL = ""; p.WebsiteURL = "" },
		},
		{
			name:       "description too short",
			mutate:     func(p *models.InsertProject) { p.Description = "short" },
			wantFields: []string{"description"},
		},
		{
			name:       "no technologies",
			mutate:     func(p *models.InsertProject) { p.Technologies = []string{} },
			wantFields: []string{"technologies"},
		},
		{
			name:       "relative github url",
			mutate:     func(p *models.InsertProject) { p.GithubURL = "example/space" },
			wantFields: []string{"githubUrl"},
		},
		{
			name:       "non-http website url",
			mutate:     func(p *models.InsertProject) { p.WebsiteURL = "ftp://example.com" },
			wantFields: []string{"websiteUrl"},
		},
	}

	v := NewPortfolioValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := valid
			tt.mutate(&payload)

			err := v.Validate(context.Background(), payload)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			assert.ElementsMatch(t, tt.wantFields, fieldNames(t, err))
		})
	}
}

func TestValidateProjectUpdate(t *testing.T) {
	v := NewPortfolioValidator()

	t.Run("nil fields are skipped", func(t *testing.T) {
		assert.NoError(t, v.Validate(context.Background(), models.ProjectUpdate{}))
	})

	t.Run("emptied technologies rejected", func(t *testing.T) {
		err := v.Validate(context.Background(), models.ProjectUpdate{
			Technologies: slicePtr([]string{}),
		})
		assert.ElementsMatch(t, []string{"technologies"}, fieldNames(t, err))
	})
}

// ---- Contacts ----

func TestValidateContact(t *testing.T) {
	valid := models.InsertContact{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "I would like to talk about a project.",
	}

	tests := []struct {
		name       string
		mutate     func(*models.InsertContact)
		wantFields []string
	}{
		{
			name:   "valid payload",
			mutate: func(c *models.InsertContact) {},
		},
		{
			name:       "invalid email",
			mutate:     func(c *models.InsertContact) { c.Email = "not-an-email" },
			wantFields: []string{"email"},
		},
		{
			name:       "message too short",
			mutate:     func(c *models.InsertContact) { c.Message = "hi" },
			wantFields: []string{"message"},
		},
		{
			name:       "message just below the limit",
			mutate:     func(c *models.InsertContact) { c.Message = strings.Repeat("a", 9) },
			wantFields: []string{"message"},
		},
		{
			name:   "message exactly at the limit",
			mutate: func(c *models.InsertContact) { c.Message = strings.Repeat("a", 10) },
		},
	}

	v := NewPortfolioValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := valid
			tt.mutate(&payload)

			err := v.Validate(context.Background(), payload)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			assert.ElementsMatch(t, tt.wantFields, fieldNames(t, err))
		})
	}
}

// ---- Users ----

func TestValidateUser(t *testing.T) {
	v := NewPortfolioValidator()

	err := v.Validate(context.Background(), models.InsertUser{
		Username: "admin",
		Password: "12345",
		Name:     "Admin",
		Email:    "admin@example.com",
	})
	assert.ElementsMatch(t, []string{"password"}, fieldNames(t, err))
}

// ---- Dispatch ----

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewPortfolioValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_PointerPayload(t *testing.T) {
	v := NewPortfolioValidator()

	err := v.Validate(context.Background(), &models.InsertSkill{})
	assert.ElementsMatch(t, []string{"category", "name", "level"}, fieldNames(t, err))
}
