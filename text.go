package main

import (
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/portfolio"
)

var (
	Name = "John Doe"
	Role = "Full Stack Developer"

	AboutMe = `Passionate about creating innovative web applications with modern technologies.
	Specialized in React.js frontend development and Go backend services.`

	Skills = []portfolio.Skill{
		{Title: "Frontend", Items: "React, JavaScript, TypeScript, Tailwind CSS"},
		{Title: "Backend", Items: "Go, REST APIs, PostgreSQL, MongoDB"},
		{Title: "Tools", Items: "Docker, Git, AWS, Linux"},
	}

	Email    = "john.doe@example.com"
	GitHub   = "johndoe"
	LinkedIn = "john-doe"
)

// profile merges the PROFILE_* overrides over the built-in content
func profile(cfg config.ProfileConfig) portfolio.Profile {
	p := portfolio.Profile{
		Name:     or(cfg.Name, Name),
		Role:     or(cfg.Role, Role),
		Bio:      or(cfg.Bio, AboutMe),
		Skills:   Skills,
		Email:    or(cfg.Email, Email),
		GitHub:   or(cfg.GitHub, GitHub),
		LinkedIn: or(cfg.LinkedIn, LinkedIn),
	}
	p.GitHubURL = "https://github.com/" + p.GitHub
	p.LinkedInURL = "https://www.linkedin.com/in/" + p.LinkedIn
	return p
}

func or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
