// Package mountfs exposes a vfs tree as a read-only FUSE file system.
//
// Directories list their children in display order (directories first) and
// files are read-only with their exact content. Inode numbers are derived from
// absolute paths, so they are stable across mounts of the same tree.
package mountfs

import (
	"context"
	"syscall"
	"time"

	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
	"github.com/zeebo/xxh3"

	"github.com/Cyclone1070/foliosh/internal/vfs"
)

// Config specifies how the tree is mounted.
type Config struct {
	// StartTime is used for file/directory timestamps. If zero, time.Now() is used.
	StartTime time.Time

	// CacheTimeout sets the kernel entry/attr cache timeout. The tree never
	// changes, so a long timeout is safe.
	CacheTimeout time.Duration

	Debug bool
}

func (c *Config) startTime() time.Time {
	if c == nil || c.StartTime.IsZero() {
		return time.Now()
	}
	return c.StartTime
}

func (c *Config) cacheTimeout() time.Duration {
	if c == nil {
		return 0
	}
	return c.CacheTimeout
}

// Inode returns the inode number for an absolute path. 0 and 1 are reserved
// (1 is the mount root), so hashes landing there are shifted.
func Inode(abs string) uint64 {
	h := xxh3.HashString(abs)
	if h <= 1 {
		h += 2
	}
	return h
}

// NewRoot wraps a directory node for go-fuse.
func NewRoot(root *vfs.Node, config *Config) fs.InodeEmbedder {
	if config != nil && config.StartTime.IsZero() {
		config.StartTime = time.Now()
	}
	return &dirNode{node: root, path: vfs.RootPath, config: config}
}

// Mount serves root read-only at mountpoint until the returned server is
// unmounted.
func Mount(mountpoint string, root *vfs.Node, config *Config) (*fuse.Server, error) {
	if config == nil {
		config = &Config{}
	}
	timeout := config.CacheTimeout
	opts := &fs.Options{}
	opts.Debug = config.Debug
	opts.EntryTimeout = &timeout
	opts.AttrTimeout = &timeout
	opts.MountOptions.FsName = "foliosh"
	opts.MountOptions.Name = "foliosh"
	opts.MountOptions.Options = []string{"ro"}
	return fs.Mount(mountpoint, NewRoot(root, config), opts)
}

func newNode(node *vfs.Node, abs string, config *Config) fs.InodeEmbedder {
	if node.IsDir() {
		return &dirNode{node: node, path: abs, config: config}
	}
	return &fileNode{node: node, path: abs, config: config}
}

func nodeMode(node *vfs.Node) uint32 {
	if node.IsDir() {
		return fuse.S_IFDIR
	}
	return fuse.S_IFREG
}

// --- dirNode: vfs directory ---

type dirNode struct {
	fs.Inode
	node   *vfs.Node
	path   string
	config *Config
}

var _ = (fs.NodeLookuper)((*dirNode)(nil))
var _ = (fs.NodeReaddirer)((*dirNode)(nil))
var _ = (fs.NodeGetattrer)((*dirNode)(nil))

// child resolves name to the embedder and stable attributes for its inode.
func (n *dirNode) child(name string) (fs.InodeEmbedder, fs.StableAttr, bool) {
	child, ok := n.node.Child(name)
	if !ok {
		return nil, fs.StableAttr{}, false
	}
	abs := vfs.Join(n.path, name)
	return newNode(child, abs, n.config), fs.StableAttr{Mode: nodeMode(child), Ino: Inode(abs)}, true
}

func (n *dirNode) Lookup(ctx context.Context, name string, out *fuse.EntryOut) (*fs.Inode, syscall.Errno) {
	embedder, attr, ok := n.child(name)
	if !ok {
		return nil, syscall.ENOENT
	}
	if timeout := n.config.cacheTimeout(); timeout > 0 {
		out.SetEntryTimeout(timeout)
		out.SetAttrTimeout(timeout)
	}
	fillAttr(&out.Attr, embedder, n.config)
	return n.NewInode(ctx, embedder, attr), 0
}

func (n *dirNode) Readdir(ctx context.Context) (fs.DirStream, syscall.Errno) {
	children := vfs.SortForDisplay(n.node.Children())
	entries := make([]fuse.DirEntry, 0, len(children))
	for _, child := range children {
		entries = append(entries, fuse.DirEntry{
			Name: child.Name(),
			Mode: nodeMode(child),
			Ino:  Inode(vfs.Join(n.path, child.Name())),
		})
	}
	return fs.NewListDirStream(entries), 0
}

func (n *dirNode) Getattr(ctx context.Context, f fs.FileHandle, out *fuse.AttrOut) syscall.Errno {
	fillAttr(&out.Attr, n, n.config)
	if timeout := n.config.cacheTimeout(); timeout > 0 {
		out.SetTimeout(timeout)
	}
	return 0
}

// --- fileNode: vfs file ---

type fileNode struct {
	fs.Inode
	node   *vfs.Node
	path   string
	config *Config
}

var _ = (fs.NodeOpener)((*fileNode)(nil))
var _ = (fs.NodeReader)((*fileNode)(nil))
var _ = (fs.NodeGetattrer)((*fileNode)(nil))

func (n *fileNode) Open(ctx context.Context, flags uint32) (fs.FileHandle, uint32, syscall.Errno) {
	if flags&(syscall.O_WRONLY|syscall.O_RDWR|syscall.O_TRUNC|syscall.O_APPEND) != 0 {
		return nil, 0, syscall.EROFS
	}
	return nil, fuse.FOPEN_KEEP_CACHE, 0
}

func (n *fileNode) Read(ctx context.Context, f fs.FileHandle, dest []byte, off int64) (fuse.ReadResult, syscall.Errno) {
	return fuse.ReadResultData(readAt([]byte(n.node.Content()), dest, off)), 0
}

func (n *fileNode) Getattr(ctx context.Context, f fs.FileHandle, out *fuse.AttrOut) syscall.Errno {
	fillAttr(&out.Attr, n, n.config)
	if timeout := n.config.cacheTimeout(); timeout > 0 {
		out.SetTimeout(timeout)
	}
	return 0
}

// --- helpers ---

func fillAttr(attr *fuse.Attr, node fs.InodeEmbedder, config *Config) {
	switch n := node.(type) {
	case *dirNode:
		attr.Mode = fuse.S_IFDIR | 0555
		attr.Ino = Inode(n.path)
		attr.Size = uint64(len(n.node.Children()))
	case *fileNode:
		attr.Mode = fuse.S_IFREG | 0444
		attr.Ino = Inode(n.path)
		attr.Size = uint64(len(n.node.Content()))
	}
	attr.Nlink = 1
	setTimestamps(attr, config.startTime())
}

func setTimestamps(attr *fuse.Attr, t time.Time) {
	attr.Atime = uint64(t.Unix())
	attr.Atimensec = uint32(t.Nanosecond())
	attr.Mtime = uint64(t.Unix())
	attr.Mtimensec = uint32(t.Nanosecond())
	attr.Ctime = uint64(t.Unix())
	attr.Ctimensec = uint32(t.Nanosecond())
}

// readAt returns the portion of data that fits in dest starting at offset off.
func readAt(data, dest []byte, off int64) []byte {
	if off >= int64(len(data)) {
		return nil
	}
	n := copy(dest, data[off:])
	return dest[:n]
}
