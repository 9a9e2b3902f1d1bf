package command

import (
	"time"

	"github.com/Cyclone1070/foliosh/internal/vfs"
)

// fileSystem is the part of vfs.FileSystem the handlers use.
type fileSystem interface {
	CurrentDirectory() string
	Home() string
	ResolvePath(path string) string
	ChangeDirectory(path string) (string, error)
	ListDirectory(path string) ([]*vfs.Node, error)
	ReadFile(path string) (string, error)
}

// Recorder observes finished commands. name is "unknown" for names outside the set.
type Recorder interface {
	ObserveCommand(name string, exitCode int, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCommand(string, int, time.Duration) {}
