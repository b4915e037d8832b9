package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agentic-research/assetgen/api"
	"github.com/agentic-research/assetgen/internal/tree"
)

const indentUnit = "    "

// Generator is implemented by anything that can describe itself and emit
// Swift accessors for a platform.
type Generator interface {
	fmt.Stringer
	GenerateCode(p api.Platform) (string, error)
}

var _ Generator = (*Catalog)(nil)

// CollisionError reports sibling entries whose names map to the same
// identifier.
type CollisionError struct {
	Parent     string
	Identifier string
	Names      []string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s: %s all map to identifier %q", e.Parent, strings.Join(e.Names, ", "), e.Identifier)
}

// GenerateCode emits one struct per group, nested like the catalog, with a
// static accessor per image set. The outermost struct is named TypeName.
// Output is deterministic for an unchanged catalog.
func (c *Catalog) GenerateCode(p api.Platform) (string, error) {
	var b strings.Builder
	if err := c.generate(&b, p, c.tree, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (c *Catalog) generate(b *strings.Builder, p api.Platform, n *tree.Node, level int) error {
	indent := strings.Repeat(indentUnit, level)
	imageType := p.ImageType()

	if level > 0 && isImageSet(n) {
		fmt.Fprintf(b, "%sstatic var %s: %s { return %s(named: %s)! }\n",
			indent, Identifier(n.Name()), imageType, imageType, swiftQuote(n.Name()))
		return nil
	}

	if err := checkCollisions(n); err != nil {
		return err
	}
	name := Identifier(n.Name())
	if level == 0 {
		name = c.TypeName()
	}
	fmt.Fprintf(b, "%sstruct %s {\n", indent, name)
	for _, child := range n.Children {
		if err := c.generate(b, p, child, level+1); err != nil {
			return err
		}
	}
	fmt.Fprintf(b, "%s}\n", indent)
	return nil
}

func checkCollisions(n *tree.Node) error {
	seen := make(map[string][]string, len(n.Children))
	for _, child := range n.Children {
		id := Identifier(child.Name())
		seen[id] = append(seen[id], child.Base())
	}
	var ids []string
	for id, names := range seen {
		if len(names) > 1 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	sort.Strings(ids)
	return &CollisionError{Parent: n.Path, Identifier: ids[0], Names: seen[ids[0]]}
}

// Banner opens every file written by SourceFile.
const Banner = "// Code generated by assetgen. DO NOT EDIT."

// SourceFile wraps GenerateCode output in a complete Swift file: the banner,
// the platform framework import, then the declarations.
func SourceFile(g Generator, p api.Platform) (string, error) {
	code, err := g.GenerateCode(p)
	if err != nil {
		return "", err
	}
	return Banner + "\n\nimport " + p.Framework() + "\n\n" + code, nil
}
