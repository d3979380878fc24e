package models

import "time"

// Skill levels accepted by the validator. Any other value is rejected
// before the payload reaches storage.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

// Skill is a single technology entry shown on the skills section,
// grouped by Category for display.
type Skill struct {
	ID string `json:"id" bson:"_id"`

	// Category groups skills for display (Frontend, Backend, Database, ...).
	Category string `json:"category" bson:"category"`

	Name string `json:"name" bson:"name"`

	// Level is one of Beginner, Intermediate, Advanced, Expert.
	Level string `json:"level" bson:"level"`

	// Icon is an optional icon name or URL.
	Icon string `json:"icon,omitempty" bson:"icon,omitempty"`

	Description string `json:"description,omitempty" bson:"description,omitempty"`

	IsActive bool `json:"isActive" bson:"isActive"`

	// Order is a free-text sort key compared lexicographically, so "10"
	// sorts before "2". Inherited from the stored data format; do not
	// switch to numeric comparison without migrating existing records.
	Order string `json:"order" bson:"order"`

	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// InsertSkill is the payload accepted by POST /api/skills.
type InsertSkill struct {
	Category    string `json:"category" bson:"category"`
	Name        string `json:"name" bson:"name"`
	Level       string `json:"level" bson:"level"`
	Icon        string `json:"icon,omitempty" bson:"icon,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty" bson:"isActive,omitempty"`
	Order       string `json:"order,omitempty" bson:"order,omitempty"`
}

// SkillUpdate is the partial payload accepted by PUT /api/skills/{id}.
// Only non-nil fields are applied; UpdatedAt is refreshed on any
// successful update.
type SkillUpdate struct {
	Category    *string `json:"category,omitempty" bson:"category,omitempty"`
	Name        *string `json:"name,omitempty" bson:"name,omitempty"`
	Level       *string `json:"level,omitempty" bson:"level,omitempty"`
	Icon        *string `json:"icon,omitempty" bson:"icon,omitempty"`
	Description *string `json:"description,omitempty" bson:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty" bson:"isActive,omitempty"`
	Order       *string `json:"order,omitempty" bson:"order,omitempty"`
}
