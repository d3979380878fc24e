package models

import "time"

// About is the "about me" section content. Singleton entity with the same
// active-record convention as [Overview].
type About struct {
	ID string `json:"id" bson:"_id"`

	Title   string `json:"title" bson:"title"`
	Content string `json:"content" bson:"content"`

	// Experiences is the list of past positions shown on the about page.
	Experiences []string `json:"experiences" bson:"experiences"`

	// Achievements is the list of highlight bullet points.
	Achievements []string `json:"achievements" bson:"achievements"`

	// ProfileImage is an optional URL/path of the profile photo.
	ProfileImage string `json:"profileImage,omitempty" bson:"profileImage,omitempty"`

	IsActive  bool      `json:"isActive" bson:"isActive"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// InsertAbout is the payload accepted by PUT /api/about.
type InsertAbout struct {
	Title        string   `json:"title" bson:"title"`
	Content      string   `json:"content" bson:"content"`
	Experiences  []string `json:"experiences" bson:"experiences"`
	Achievements []string `json:"achievements" bson:"achievements"`
	ProfileImage string   `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	IsActive     *bool    `json:"isActive,omitempty" bson:"isActive,omitempty"`
}

// Active reports the effective IsActive value, defaulting to true.
func (i InsertAbout) Active() bool {
	if i.IsActive == nil {
		return true
	}
	return *i.IsActive
}
