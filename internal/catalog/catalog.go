// Package catalog turns an asset catalog directory into a filtered tree of
// groups and image sets and generates Swift accessors for it.
package catalog

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	billy "github.com/go-git/go-billy/v5"

	"github.com/agentic-research/assetgen/internal/tree"
)

// Catalog is an asset catalog reduced to its groups and valid image sets.
// It is immutable once loaded.
type Catalog struct {
	RootPath string
	Name     string

	tree     *tree.Node
	store    ContentStore
	excluded []Exclusion
}

// Exclusion is a directory left out of the catalog.
type Exclusion struct {
	Path   string
	Reason string
}

// Load builds the tree rooted at root on fsys and filters it with a
// Validator reading through store. It fails only when a directory cannot be
// listed; invalid image sets and unknown entries are dropped and recorded in
// Excluded. The root itself is always kept.
func Load(fsys billy.Filesystem, store ContentStore, root string) (*Catalog, error) {
	root = filepath.Clean(root)
	raw, err := tree.Build(fsys, root)
	if err != nil {
		return nil, err
	}

	v := NewValidator(store)
	var excluded []Exclusion
	filtered := tree.Filter(raw, func(n *tree.Node) bool {
		if n == raw {
			return true
		}
		reason := v.Reject(n)
		if reason != "" && !n.IsLeaf {
			excluded = append(excluded, Exclusion{Path: n.Path, Reason: reason})
		}
		return reason == ""
	})
	sort.Slice(excluded, func(i, j int) bool { return excluded[i].Path < excluded[j].Path })

	return &Catalog{
		RootPath: root,
		Name:     baseName(root) + NameSuffix,
		tree:     filtered,
		store:    store,
		excluded: excluded,
	}, nil
}

// Excluded lists the directories dropped while loading, sorted by path.
// Plain files are not listed.
func (c *Catalog) Excluded() []Exclusion { return c.excluded }

// Tree returns the filtered tree. Callers must not modify it.
func (c *Catalog) Tree() *tree.Node { return c.tree }

// TypeName is the identifier of the outermost generated declaration.
func (c *Catalog) TypeName() string {
	return typeIdentifier(PascalCase(baseName(c.RootPath)) + NameSuffix)
}

// Counts returns the number of groups below the root and the number of
// image sets in the catalog.
func (c *Catalog) Counts() (groups, imageSets int) {
	_ = tree.Walk(c.tree, func(n *tree.Node, depth int) error {
		switch {
		case depth == 0:
		case isImageSet(n):
			imageSets++
		default:
			groups++
		}
		return nil
	})
	return groups, imageSets
}

func (c *Catalog) String() string {
	return fmt.Sprintf("AssetCatalog{name=%s, path=%s}", c.Name, c.RootPath)
}

func baseName(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isImageSet(n *tree.Node) bool {
	return !n.IsLeaf && n.Ext() == ImageSetExtension
}
