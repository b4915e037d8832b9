// Package tree models a directory hierarchy as an ordered, owned tree of
// nodes and provides the filtering used to reduce an asset catalog to the
// entries that matter for code generation.
package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	billy "github.com/go-git/go-billy/v5"
)

// Node is one filesystem entry. Each node exclusively owns its children.
type Node struct {
	Path     string  // Path of the entry, as passed to Build and joined below it
	IsLeaf   bool    // true for regular files, false for directories
	Children []*Node // Sorted by name; always empty for leaves
}

// BuildError reports a path that could not be listed while building a tree.
type BuildError struct {
	Path string
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Base returns the final path component.
func (n *Node) Base() string {
	return filepath.Base(n.Path)
}

// Ext returns the extension of the final path component including the dot,
// or "" when there is none.
func (n *Node) Ext() string {
	return filepath.Ext(n.Path)
}

// Name returns the final path component without its extension.
func (n *Node) Name() string {
	base := n.Base()
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Child returns the direct child whose final path component equals base.
func (n *Node) Child(base string) *Node {
	for _, c := range n.Children {
		if c.Base() == base {
			return c
		}
	}
	return nil
}

// Build lists path recursively on fsys. Directories become inner nodes and
// regular files become leaves. Siblings are sorted by name so the result does
// not depend on directory listing order. Symbolic links are not followed and
// are left out of the tree.
func Build(fsys billy.Filesystem, path string) (*Node, error) {
	entries, err := fsys.ReadDir(path)
	if err != nil {
		return nil, &BuildError{Path: path, Err: err}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	root := &Node{Path: path}
	for _, e := range entries {
		if e.Mode()&os.ModeSymlink != 0 {
			continue
		}
		childPath := fsys.Join(path, e.Name())
		if !e.IsDir() {
			root.Children = append(root.Children, &Node{Path: childPath, IsLeaf: true})
			continue
		}
		child, err := Build(fsys, childPath)
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, child)
	}
	return root, nil
}

// Filter returns a new tree holding only the nodes for which keep returns
// true. Children are filtered before their parent is tested; a node that is
// rejected is dropped together with its subtree. keep always sees the
// original, unfiltered node so it can inspect entries that will themselves be
// filtered out. Filter returns nil when the root is rejected.
func Filter(n *Node, keep func(*Node) bool) *Node {
	if n == nil {
		return nil
	}
	var children []*Node
	for _, c := range n.Children {
		if fc := Filter(c, keep); fc != nil {
			children = append(children, fc)
		}
	}
	if !keep(n) {
		return nil
	}
	return &Node{Path: n.Path, IsLeaf: n.IsLeaf, Children: children}
}

// Walk calls fn for n and every descendant in depth-first, name order.
// depth is 0 for n. A non-nil error from fn stops the walk.
func Walk(n *Node, fn func(n *Node, depth int) error) error {
	return walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) error) error {
	if n == nil {
		return nil
	}
	if err := fn(n, depth); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := walk(c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
