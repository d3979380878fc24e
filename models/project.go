package models

import "time"

// Project is a portfolio project card. Featured projects are surfaced
// separately on the landing page.
type Project struct {
	ID string `json:"id" bson:"_id"`

	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`

	// Technologies is the list of technology tags shown on the card.
	Technologies []string `json:"technologies" bson:"technologies"`

	// Images is the list of screenshot URLs/paths.
	Images []string `json:"images" bson:"images"`

	GithubURL  string `json:"githubUrl,omitempty" bson:"githubUrl,omitempty"`
	WebsiteURL string `json:"websiteUrl,omitempty" bson:"websiteUrl,omitempty"`

	Featured bool `json:"featured" bson:"featured"`
	IsActive bool `json:"isActive" bson:"isActive"`

	// Order is a free-text sort key compared lexicographically.
	// See the note on [Skill.Order].
	Order string `json:"order" bson:"order"`

	// CreatedAt is set once at creation and never changed.
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// InsertProject is the payload accepted by POST /api/projects.
type InsertProject struct {
	Title        string   `json:"title" bson:"title"`
	Description  string   `json:"description" bson:"description"`
	Technologies []string `json:"technologies" bson:"technologies"`
	Images       []string `json:"images" bson:"images"`
	GithubURL    string   `json:"githubUrl,omitempty" bson:"githubUrl,omitempty"`
	WebsiteURL   string   `json:"websiteUrl,omitempty" bson:"websiteUrl,omitempty"`
	Featured     bool     `json:"featured" bson:"featured"`
	IsActive     *bool    `json:"isActive,omitempty" bson:"isActive,omitempty"`
	Order        string   `json:"order,omitempty" bson:"order,omitempty"`
}

// ProjectUpdate is the partial payload accepted by PUT /api/projects/{id}.
type ProjectUpdate struct {
	Title        *string   `json:"title,omitempty" bson:"title,omitempty"`
	Description  *string   `json:"description,omitempty" bson:"description,omitempty"`
	Technologies *[]string `json:"technologies,omitempty" bson:"technologies,omitempty"`
	Images       *[]string `json:"images,omitempty" bson:"images,omitempty"`
	GithubURL    *string   `json:"githubUrl,omitempty" bson:"githubUrl,omitempty"`
	WebsiteURL   *string   `json:"websiteUrl,omitempty" bson:"websiteUrl,omitempty"`
	Featured     *bool     `json:"featured,omitempty" bson:"featured,omitempty"`
	IsActive     *bool     `json:"isActive,omitempty" bson:"isActive,omitempty"`
	Order        *string   `json:"order,omitempty" bson:"order,omitempty"`
}
