package content

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Cyclone1070/foliosh/internal/vfs"
)

// BuildTree lays a profile out as a file tree:
//
//	/about.txt
//	/experience/<slug>.txt
//	/projects/<slug>.md
//	/skills/<slug>.txt
//	/contact.txt
//
// Slugs come from the explicit slug field or the display name; collisions get a
// numeric suffix.
func BuildTree(p *Profile) (*vfs.Node, error) {
	if p == nil {
		return nil, fmt.Errorf("failed to build tree: %w", ErrInvalidProfile)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("failed to build tree: %w", err)
	}

	root := vfs.NewDirectory("")
	if err := root.Add(vfs.NewFile(vfs.Base(AboutPath), formatAbout(p))); err != nil {
		return nil, err
	}

	experience := vfs.NewDirectory(vfs.Base(ExperienceDir))
	seen := map[string]int{}
	for _, job := range p.Experience {
		name := uniqueSlug(seen, pick(job.Slug, job.Company)) + ".txt"
		if err := experience.Add(vfs.NewFile(name, formatJob(job))); err != nil {
			return nil, fmt.Errorf("failed to add job %q: %w", job.Company, err)
		}
	}

	projects := vfs.NewDirectory(vfs.Base(ProjectsDir))
	seen = map[string]int{}
	for _, project := range p.Projects {
		name := uniqueSlug(seen, pick(project.Slug, project.Name)) + ".md"
		if err := projects.Add(vfs.NewFile(name, formatProject(project))); err != nil {
			return nil, fmt.Errorf("failed to add project %q: %w", project.Name, err)
		}
	}

	skills := vfs.NewDirectory(vfs.Base(SkillsDir))
	seen = map[string]int{}
	for _, group := range p.Skills {
		name := uniqueSlug(seen, group.Category) + ".txt"
		if err := skills.Add(vfs.NewFile(name, formatSkills(group))); err != nil {
			return nil, fmt.Errorf("failed to add skill group %q: %w", group.Category, err)
		}
	}

	for _, dir := range []*vfs.Node{experience, projects, skills} {
		if err := root.Add(dir); err != nil {
			return nil, err
		}
	}
	if err := root.Add(vfs.NewFile(vfs.Base(ContactPath), formatContact(p.Contact))); err != nil {
		return nil, err
	}
	return root, nil
}

func pick(explicit, fallback string) string {
	if explicit != "" {
		return explicit
	}
	return fallback
}

func uniqueSlug(seen map[string]int, name string) string {
	slug := Slugify(name)
	seen[slug]++
	if n := seen[slug]; n > 1 {
		return fmt.Sprintf("%s-%d", slug, n)
	}
	return slug
}

// Slugify lowercases name and collapses every run of non-alphanumerics into a
// single "-". A name with no usable characters becomes "untitled".
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "untitled"
	}
	return b.String()
}
