package views

import (
	"strings"

	"github.com/Cyclone1070/foliosh/internal/ui/models"
)

// RenderCandidates renders the completion candidates, or "" when there are none.
func RenderCandidates(s models.State, styles Styles) string {
	if len(s.Candidates) == 0 {
		return ""
	}
	return styles.Popup.Render(strings.Join(s.Candidates, "  "))
}
