// Package content supplies the data behind the shell: a Profile loaded from YAML
// or JSON, and the tree built from it.
package content

import (
	"fmt"
	"strings"
)

// Profile is everything the portfolio shell knows about its owner.
type Profile struct {
	Name       string       `mapstructure:"name"`
	Title      string       `mapstructure:"title"`
	Location   string       `mapstructure:"location"`
	About      string       `mapstructure:"about"`
	Experience []Job        `mapstructure:"experience"`
	Projects   []Project    `mapstructure:"projects"`
	Skills     []SkillGroup `mapstructure:"skills"`
	Contact    Contact      `mapstructure:"contact"`
}

// Job is one position in the work history.
type Job struct {
	Slug       string   `mapstructure:"slug"`
	Company    string   `mapstructure:"company"`
	Role       string   `mapstructure:"role"`
	Start      string   `mapstructure:"start"`
	End        string   `mapstructure:"end"`
	Location   string   `mapstructure:"location"`
	Summary    string   `mapstructure:"summary"`
	Highlights []string `mapstructure:"highlights"`
}

// Project is one portfolio write-up.
type Project struct {
	Slug        string   `mapstructure:"slug"`
	Name        string   `mapstructure:"name"`
	Year        string   `mapstructure:"year"`
	Summary     string   `mapstructure:"summary"`
	Description string   `mapstructure:"description"`
	Stack       []string `mapstructure:"stack"`
	URL         string   `mapstructure:"url"`
}

// SkillGroup is a named list of skills.
type SkillGroup struct {
	Category string   `mapstructure:"category"`
	Items    []string `mapstructure:"items"`
}

// Contact holds the ways to reach the owner. Empty fields are omitted.
type Contact struct {
	Email    string `mapstructure:"email"`
	Website  string `mapstructure:"website"`
	GitHub   string `mapstructure:"github"`
	LinkedIn string `mapstructure:"linkedin"`
}

// Validate reports every missing required field at once.
func (p *Profile) Validate() error {
	var problems []string

	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, "name is required")
	}
	for i, job := range p.Experience {
		if strings.TrimSpace(job.Company) == "" {
			problems = append(problems, fmt.Sprintf("experience[%d].company is required", i))
		}
	}
	for i, project := range p.Projects {
		if strings.TrimSpace(project.Name) == "" {
			problems = append(problems, fmt.Sprintf("projects[%d].name is required", i))
		}
	}
	for i, group := range p.Skills {
		if strings.TrimSpace(group.Category) == "" {
			problems = append(problems, fmt.Sprintf("skills[%d].category is required", i))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
