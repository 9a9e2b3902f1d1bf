package vfs

import (
	"errors"
	"fmt"
)

// -- Error Types --

// NotFoundError is returned when a path does not resolve to any node.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: No such file or directory", e.Path)
}
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NotADirectoryError is returned when a directory operation resolves to a file.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("%s: Not a directory", e.Path)
}
func (e *NotADirectoryError) Is(target error) bool { return target == ErrNotADirectory }

// IsADirectoryError is returned when a file operation resolves to a directory.
type IsADirectoryError struct {
	Path string
}

func (e *IsADirectoryError) Error() string {
	return fmt.Sprintf("%s: Is a directory", e.Path)
}
func (e *IsADirectoryError) Is(target error) bool { return target == ErrIsADirectory }

// DuplicateNameError is returned when a child name is already taken in its directory.
type DuplicateNameError struct {
	Parent string
	Name   string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate entry %q in directory %q", e.Name, e.Parent)
}
func (e *DuplicateNameError) Is(target error) bool { return target == ErrDuplicateName }

// InvalidNameError is returned for names that cannot appear as a path segment.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid node name %q", e.Name)
}
func (e *InvalidNameError) Is(target error) bool { return target == ErrInvalidName }

// -- Sentinels --

var (
	ErrNotFound      = errors.New("no such file or directory")
	ErrNotADirectory = errors.New("not a directory")
	ErrIsADirectory  = errors.New("is a directory")
	ErrDuplicateName = errors.New("duplicate name")
	ErrInvalidName   = errors.New("invalid name")
	ErrNilRoot       = errors.New("root must be a directory")
)

// Reason returns the short, shell-style description of a filesystem error,
// e.g. "No such file or directory". Unknown errors return their message.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "No such file or directory"
	case errors.Is(err, ErrNotADirectory):
		return "Not a directory"
	case errors.Is(err, ErrIsADirectory):
		return "Is a directory"
	default:
		return err.Error()
	}
}
