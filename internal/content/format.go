package content

import (
	"fmt"
	"strings"
)

// formatJob renders a job as a key/value record, one "Key: value" per line.
func formatJob(job Job) string {
	var b strings.Builder
	writeField(&b, "Company", job.Company)
	writeField(&b, "Role", job.Role)
	if job.Start != "" {
		end := job.End
		if end == "" {
			end = "present"
		}
		writeField(&b, "Period", fmt.Sprintf("%s - %s", job.Start, end))
	}
	writeField(&b, "Location", job.Location)
	writeField(&b, "Summary", strings.TrimSpace(job.Summary))
	for _, h := range job.Highlights {
		writeField(&b, "Highlight", h)
	}
	return b.String()
}

func formatProject(project Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", project.Name)
	if project.Year != "" {
		fmt.Fprintf(&b, "\n_%s_\n", project.Year)
	}
	if s := strings.TrimSpace(project.Summary); s != "" {
		fmt.Fprintf(&b, "\n%s\n", s)
	}
	if d := strings.TrimSpace(project.Description); d != "" {
		fmt.Fprintf(&b, "\n%s\n", d)
	}
	if len(project.Stack) > 0 {
		fmt.Fprintf(&b, "\n**Stack:** %s\n", strings.Join(project.Stack, ", "))
	}
	if project.URL != "" {
		fmt.Fprintf(&b, "\n[%s](%s)\n", project.URL, project.URL)
	}
	return b.String()
}

func formatSkills(group SkillGroup) string {
	if len(group.Items) == 0 {
		return ""
	}
	return strings.Join(group.Items, "\n") + "\n"
}

func formatContact(contact Contact) string {
	var b strings.Builder
	writeField(&b, "Email", contact.Email)
	writeField(&b, "Website", contact.Website)
	writeField(&b, "GitHub", contact.GitHub)
	writeField(&b, "LinkedIn", contact.LinkedIn)
	return b.String()
}

func formatAbout(p *Profile) string {
	about := strings.TrimSpace(p.About)
	header := p.Name
	if p.Title != "" {
		header += " - " + p.Title
	}
	if about == "" {
		return header + "\n"
	}
	return header + "\n\n" + about + "\n"
}

// writeField skips empty values so records stay free of blank keys.
func writeField(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", key, value)
}
