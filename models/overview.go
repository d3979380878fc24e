package models

import "time"

// Overview is the hero section content of the public portfolio page.
//
// Overview is a singleton entity: at most one record with IsActive == true
// exists at any time. Update either replaces that record in place or
// creates it when absent.
type Overview struct {
	ID string `json:"id" bson:"_id"`

	Title    string `json:"title" bson:"title"`
	Subtitle string `json:"subtitle" bson:"subtitle"`

	// Description is the longer hero paragraph under the subtitle.
	Description string `json:"description" bson:"description"`

	// Expertise is the ordered list of expertise tags shown in the hero.
	Expertise []string `json:"expertise" bson:"expertise"`

	// BackgroundImage is an optional URL/path of the hero background.
	BackgroundImage string `json:"backgroundImage,omitempty" bson:"backgroundImage,omitempty"`

	IsActive  bool      `json:"isActive" bson:"isActive"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// InsertOverview is the payload accepted by PUT /api/overview.
// ID and UpdatedAt are always server-set.
type InsertOverview struct {
	Title           string   `json:"title" bson:"title"`
	Subtitle        string   `json:"subtitle" bson:"subtitle"`
	Description     string   `json:"description" bson:"description"`
	Expertise       []string `json:"expertise" bson:"expertise"`
	BackgroundImage string   `json:"backgroundImage,omitempty" bson:"backgroundImage,omitempty"`
	IsActive        *bool    `json:"isActive,omitempty" bson:"isActive,omitempty"`
}

// Active reports the effective IsActive value of the payload,
// defaulting to true when the field is omitted.
func (i InsertOverview) Active() bool {
	if i.IsActive == nil {
		return true
	}
	return *i.IsActive
}
