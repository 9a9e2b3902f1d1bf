package views

import (
	"github.com/Cyclone1070/foliosh/internal/ui/models"
)

// RenderInput renders the prompt line.
func RenderInput(s models.State) string {
	return s.Input.View()
}
