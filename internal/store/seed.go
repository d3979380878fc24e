package store

import (
	"time"

	"github.com/MKhiriev/portfolio-cms/internal/config"
	"github.com/MKhiriev/portfolio-cms/models"
)

// seed fills the in-memory store with the demo portfolio content shown
// before the admin edits anything. Runs once at construction, before any
// request is served, so no locking is taken here.
func (m *memoryStorage) seed(cfg config.App) {
	now := time.Now()

	admin := models.User{
		ID:       newID(),
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Name:     "Space Portfolio Admin",
		Email:    "admin@spaceportfolio.dev",
		Role:     models.RoleAdmin,
	}
	m.users[admin.ID] = admin

	m.overview = &models.Overview{
		ID:              newID(),
		Title:           "Space Developer",
		Subtitle:        "Coding from the cosmos",
		Description:     "Building innovative web applications with modern technologies while exploring the infinite possibilities of the digital universe.",
		Expertise:       []string{"React", "Node.js", "TypeScript", "MongoDB", "Space Technology"},
		BackgroundImage: "/space-bg.jpg",
		IsActive:        true,
		UpdatedAt:       now,
	}

	m.about = &models.About{
		ID:      newID(),
		Title:   "About the Space Developer",
		Content: "With over 5 years of experience in web development, I specialize in creating stellar applications that push the boundaries of what's possible. My journey began with a fascination for both space exploration and coding, leading me to combine these passions into a unique development approach.",
		Experiences: []string{
			"Senior Full-Stack Developer at Stellar Systems",
			"Lead Frontend Engineer at Cosmic Solutions",
			"Freelance Space-Tech Consultant",
			"Contributor to Open Source Space Projects",
		},
		Achievements: []string{
			"Built 50+ web applications",
			"Mentored 20+ junior developers",
			"Speaker at 10+ tech conferences",
			"Winner of Space Hackathon 2023",
		},
		ProfileImage: "/profile.jpg",
		IsActive:     true,
		UpdatedAt:    now,
	}

	seedSkills := []models.Skill{
		{Category: "Frontend", Name: "React", Level: models.LevelExpert, Description: "Building dynamic user interfaces", Order: "0"},
		{Category: "Frontend", Name: "TypeScript", Level: models.LevelAdvanced, Description: "Type-safe JavaScript development", Order: "1"},
		{Category: "Frontend", Name: "Tailwind CSS", Level: models.LevelAdvanced, Description: "Utility-first CSS framework", Order: "2"},
		{Category: "Backend", Name: "Node.js", Level: models.LevelExpert, Description: "Server-side JavaScript runtime", Order: "3"},
		{Category: "Backend", Name: "Express.js", Level: models.LevelAdvanced, Description: "Web application framework", Order: "4"},
		{Category: "Database", Name: "MongoDB", Level: models.LevelAdvanced, Description: "NoSQL database solutions", Order: "5"},
		{Category: "Database", Name: "PostgreSQL", Level: models.LevelIntermediate, Description: "Relational database management", Order: "6"},
		{Category: "DevOps", Name: "Docker", Level: models.LevelIntermediate, Description: "Containerization technology", Order: "7"},
	}
	for _, skill := range seedSkills {
		skill.ID = newID()
		skill.IsActive = true
		skill.UpdatedAt = now
		m.skills[skill.ID] = skill
	}

	seedProjects := []models.Project{
		{
			Title:        "Space Portfolio CMS",
			Description:  "A comprehensive portfolio website with content management system, featuring space-themed design and drag-and-drop functionality.",
			Technologies: []string{"React", "TypeScript", "Tailwind CSS", "MongoDB", "Express.js"},
			Images:       []string{},
			GithubURL:    "https://github.com/space-dev/portfolio-cms",
			WebsiteURL:   "https://space-portfolio.dev",
			Featured:     true,
			Order:        "0",
		},
		{
			Title:        "Cosmic Task Manager",
			Description:  "A stellar task management application with real-time collaboration and space-themed animations.",
			Technologies: []string{"React", "Socket.io", "Node.js", "PostgreSQL"},
			Images:       []string{},
			GithubURL:    "https://github.com/space-dev/cosmic-tasks",
			WebsiteURL:   "https://cosmic-tasks.dev",
			Featured:     true,
			Order:        "1",
		},
		{
			Title:        "Stellar E-commerce",
			Description:  "An out-of-this-world e-commerce platform with advanced filtering and payment integration.",
			Technologies: []string{"Next.js", "Stripe", "MongoDB", "Vercel"},
			Images:       []string{},
			GithubURL:    "https://github.com/space-dev/stellar-shop",
			WebsiteURL:   "https://stellar-shop.dev",
			Featured:     false,
			Order:        "2",
		},
	}
	for _, project := range seedProjects {
		project.ID = newID()
		project.IsActive = true
		project.CreatedAt = now
		project.UpdatedAt = now
		m.projects[project.ID] = project
	}
}
