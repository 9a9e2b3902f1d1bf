package services

import (
	"github.com/mitchellh/mapstructure"

	"github.com/Cyclone1070/foliosh/internal/output"
)

// Hints are the metadata fields a renderer acts on.
type Hints struct {
	Action string `mapstructure:"action"`
	Format string `mapstructure:"format"`
	Path   string `mapstructure:"path"`
	Kind   string `mapstructure:"kind"`
	Source string `mapstructure:"source"`
}

// DecodeHints reads the known keys of a line's metadata. Unknown keys and
// values of the wrong type are ignored.
func DecodeHints(line output.Line) Hints {
	var h Hints
	if len(line.Metadata) == 0 {
		return h
	}
	known := make(map[string]any, len(line.Metadata))
	for k, v := range line.Metadata {
		if _, ok := v.(string); ok {
			known[k] = v
		}
	}
	_ = mapstructure.Decode(known, &h)
	return h
}

// IsMarkdown reports whether the line carries a markdown document.
func (h Hints) IsMarkdown() bool { return h.Format == output.FormatMarkdown }

// IsDirectory reports whether the line names a directory.
func (h Hints) IsDirectory() bool { return h.Kind == "directory" }
