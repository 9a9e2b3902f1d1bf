package vfs

import "strings"

// RootPath is the absolute path of the tree root.
const RootPath = "/"

// Resolve turns path into an absolute, normalised path. Relative paths are taken
// from cursor; "~" and "~/..." are taken from home. ".." never climbs above the root.
// An empty path resolves to cursor.
func Resolve(cursor, home, path string) string {
	switch {
	case path == "":
		return Clean(cursor)
	case path == "~":
		return Clean(home)
	case strings.HasPrefix(path, "~/"):
		return join(Clean(home), path[2:])
	case strings.HasPrefix(path, "/"):
		return join(RootPath, path)
	default:
		return join(Clean(cursor), path)
	}
}

// Clean normalises an absolute path: repeated slashes, "." and ".." segments are
// folded, a trailing slash is dropped. Relative input is treated as rooted.
func Clean(path string) string {
	return join(RootPath, path)
}

// Split returns the segments of an absolute path; the root has none.
func Split(abs string) []string {
	trimmed := strings.Trim(abs, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// Join builds a child path from a parent path and a name.
func Join(parent, name string) string {
	if parent == RootPath {
		return RootPath + name
	}
	return parent + "/" + name
}

// Parent returns the absolute path of the containing directory; the root is its
// own parent.
func Parent(abs string) string {
	segments := Split(abs)
	if len(segments) <= 1 {
		return RootPath
	}
	return RootPath + strings.Join(segments[:len(segments)-1], "/")
}

// Base returns the last segment of an absolute path, or "/" for the root.
func Base(abs string) string {
	segments := Split(abs)
	if len(segments) == 0 {
		return RootPath
	}
	return segments[len(segments)-1]
}

func join(base, rel string) string {
	segments := Split(base)
	for _, seg := range strings.Split(rel, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, seg)
		}
	}
	return RootPath + strings.Join(segments, "/")
}
