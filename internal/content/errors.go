package content

import (
	"errors"
	"fmt"
	"strings"
)

// UnsupportedFormatError is returned for profile files that are neither YAML nor JSON.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported profile format %s (want .yaml, .yml or .json)", e.Path)
}

// DecodeError is returned when profile data cannot be parsed or mapped onto Profile.
type DecodeError struct {
	Format string
	Cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s profile: %v", e.Format, e.Cause)
}
func (e *DecodeError) Unwrap() error { return e.Cause }

// ValidationError lists everything wrong with a decoded profile.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s", strings.Join(e.Problems, "; "))
}
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidProfile }

// -- Sentinels --

var (
	ErrInvalidProfile = errors.New("invalid profile")
)
