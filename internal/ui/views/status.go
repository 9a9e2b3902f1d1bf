package views

import (
	"fmt"

	"github.com/Cyclone1070/foliosh/internal/ui/models"
)

// RenderStatus renders the status bar: directory, last exit code and key help.
func RenderStatus(s models.State, styles Styles) string {
	status := fmt.Sprintf("%s  exit %d  tab: complete  ↑/↓: history  ctrl+l: clear  ctrl+c: quit", s.Cwd, s.ExitCode)
	return styles.Status.Render(status)
}
