package vfs

import "strings"

// FileSystem is one session's view of a tree: the tree itself, the cursor (current
// directory) and a lazily filled content cache. It is owned by a single caller and is
// not safe for concurrent use.
type FileSystem struct {
	root   *Node
	home   string
	cursor string
	cache  *contentCache
}

// Option configures a FileSystem.
type Option func(*FileSystem)

// WithHome sets the directory "~" refers to. Defaults to the root.
func WithHome(path string) Option {
	return func(f *FileSystem) {
		f.home = Clean(path)
	}
}

// New creates a FileSystem over root with the cursor at "/".
func New(root *Node, opts ...Option) (*FileSystem, error) {
	if root == nil || !root.IsDir() {
		return nil, ErrNilRoot
	}
	f := &FileSystem{
		root:   root,
		home:   RootPath,
		cursor: RootPath,
		cache:  newContentCache(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Root returns the tree root.
func (f *FileSystem) Root() *Node { return f.root }

// Home returns the absolute home path.
func (f *FileSystem) Home() string { return f.home }

// CurrentDirectory returns the cursor.
func (f *FileSystem) CurrentDirectory() string { return f.cursor }

// ResolvePath resolves path against the cursor and home without touching the tree.
func (f *FileSystem) ResolvePath(path string) string {
	return Resolve(f.cursor, f.home, path)
}

// Stat resolves path and returns the node it names.
func (f *FileSystem) Stat(path string) (*Node, error) {
	return f.lookup(f.ResolvePath(path))
}

// ChangeDirectory moves the cursor. On failure the cursor is left untouched.
func (f *FileSystem) ChangeDirectory(path string) (string, error) {
	abs := f.ResolvePath(path)
	node, err := f.lookup(abs)
	if err != nil {
		return f.cursor, err
	}
	if !node.IsDir() {
		return f.cursor, &NotADirectoryError{Path: abs}
	}
	f.cursor = abs
	return abs, nil
}

// ListDirectory returns the direct children of the directory at path, in insertion
// order. An empty path lists the cursor.
func (f *FileSystem) ListDirectory(path string) ([]*Node, error) {
	abs := f.ResolvePath(path)
	node, err := f.lookup(abs)
	if err != nil {
		return nil, err
	}
	if !node.IsDir() {
		return nil, &NotADirectoryError{Path: abs}
	}
	return node.Children(), nil
}

// ReadFile returns the content of the file at path. Content is cached by resolved
// path on first read.
func (f *FileSystem) ReadFile(path string) (string, error) {
	abs := f.ResolvePath(path)
	if content, ok := f.cache.get(abs); ok {
		return content, nil
	}
	node, err := f.lookup(abs)
	if err != nil {
		return "", err
	}
	if node.IsDir() {
		return "", &IsADirectoryError{Path: abs}
	}
	content := node.Content()
	f.cache.put(abs, content)
	return content, nil
}

// DisplayPath renders an absolute path for a prompt, abbreviating home as "~".
func (f *FileSystem) DisplayPath(abs string) string {
	switch {
	case abs == f.home:
		return "~"
	case f.home == RootPath:
		return "~" + abs
	case strings.HasPrefix(abs, f.home+"/"):
		return "~" + strings.TrimPrefix(abs, f.home)
	default:
		return abs
	}
}

// Reset puts the cursor back at the root and drops cached content.
func (f *FileSystem) Reset() {
	f.cursor = RootPath
	f.cache.clear()
}

func (f *FileSystem) lookup(abs string) (*Node, error) {
	node := f.root
	walked := RootPath
	for _, seg := range Split(abs) {
		if !node.IsDir() {
			return nil, &NotADirectoryError{Path: walked}
		}
		child, ok := node.Child(seg)
		if !ok {
			return nil, &NotFoundError{Path: abs}
		}
		node = child
		walked = Join(walked, seg)
	}
	return node, nil
}
