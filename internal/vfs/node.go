// Package vfs implements the in-memory tree the shell browses, along with path
// resolution against a per-session cursor.
package vfs

import "strings"

// Kind distinguishes files from directories.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Node is an entry in the tree. Directories keep their children in insertion
// order; files carry content. Nodes have no parent pointer: the parent of a node
// is recovered from its path.
type Node struct {
	name     string
	kind     Kind
	content  string
	order    []string
	children map[string]*Node
}

// NewFile creates a file node.
func NewFile(name, content string) *Node {
	return &Node{name: name, kind: KindFile, content: content}
}

// NewDirectory creates an empty directory node.
func NewDirectory(name string) *Node {
	return &Node{name: name, kind: KindDirectory, children: make(map[string]*Node)}
}

// Add appends child to a directory. Names must be unique among siblings and
// usable as a single path segment.
func (n *Node) Add(child *Node) error {
	if n.kind != KindDirectory {
		return &NotADirectoryError{Path: n.name}
	}
	if err := validateName(child.name); err != nil {
		return err
	}
	if _, exists := n.children[child.name]; exists {
		return &DuplicateNameError{Parent: n.name, Name: child.name}
	}
	n.children[child.name] = child
	n.order = append(n.order, child.name)
	return nil
}

// Name returns the node name. The root's name is "".
func (n *Node) Name() string { return n.name }

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool { return n.kind == KindDirectory }

// Content returns the file content; directories have none.
func (n *Node) Content() string { return n.content }

// Size is the content length in bytes for files and the child count for directories.
func (n *Node) Size() int {
	if n.IsDir() {
		return len(n.order)
	}
	return len(n.content)
}

// Children returns the direct children in insertion order.
func (n *Node) Children() []*Node {
	if !n.IsDir() {
		return nil
	}
	out := make([]*Node, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.children[name])
	}
	return out
}

// Child returns the direct child with the given name.
func (n *Node) Child(name string) (*Node, bool) {
	if !n.IsDir() {
		return nil, false
	}
	child, ok := n.children[name]
	return child, ok
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.Contains(name, "/") {
		return &InvalidNameError{Name: name}
	}
	return nil
}
