package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Supported profile formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

//go:embed default_profile.yaml
var defaultProfile []byte

// Default returns the profile compiled into the binary.
func Default() (*Profile, error) {
	return Parse(defaultProfile, FormatYAML)
}

// Load reads a profile from disk; the extension selects the format.
func Load(path string) (*Profile, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return Parse(data, format)
}

// Parse decodes profile data. Both formats are first read into a generic map and
// then mapped onto Profile, so they share one set of field names. Unknown keys are
// rejected and scalars are converted loosely (a numeric year becomes a string).
func Parse(data []byte, format string) (*Profile, error) {
	var raw map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &DecodeError{Format: format, Cause: err}
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, &DecodeError{Format: format, Cause: err}
		}
	default:
		return nil, &UnsupportedFormatError{Path: format}
	}

	var profile Profile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &profile,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, &DecodeError{Format: format, Cause: err}
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, &DecodeError{Format: format, Cause: err}
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", &UnsupportedFormatError{Path: path}
	}
}
