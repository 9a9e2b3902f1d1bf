package content

import (
	"path"
	"strings"

	"github.com/Cyclone1070/foliosh/internal/output"
)

// Well-known locations in a built tree. The shortcut commands read these.
const (
	AboutPath     = "/about.txt"
	ContactPath   = "/contact.txt"
	ExperienceDir = "/experience"
	ProjectsDir   = "/projects"
	SkillsDir     = "/skills"
)

// FormatFor reports the payload format of the file at abs.
func FormatFor(abs string) string {
	switch {
	case path.Ext(abs) == ".md":
		return output.FormatMarkdown
	case strings.HasPrefix(abs, ExperienceDir+"/"):
		return output.FormatRecord
	default:
		return output.FormatPlain
	}
}
