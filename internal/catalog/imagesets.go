package catalog

import (
	"fmt"
	"path/filepath"

	"github.com/ohler55/ojg/jp"

	"github.com/agentic-research/assetgen/api"
	"github.com/agentic-research/assetgen/internal/tree"
)

var filenamesPath = jp.MustParseString("$.images[*].filename")

// ImageSets lists every image set in the catalog in generation order, with
// the accessor path the generated code exposes it under. Like GenerateCode it
// fails with a *CollisionError when sibling names share an identifier.
func (c *Catalog) ImageSets() ([]api.ImageSet, error) {
	sets := make([]api.ImageSet, 0)
	var walk func(n *tree.Node, prefix string) error
	walk = func(n *tree.Node, prefix string) error {
		if err := checkCollisions(n); err != nil {
			return err
		}
		for _, child := range n.Children {
			accessor := prefix + "." + Identifier(child.Name())
			if !isImageSet(child) {
				if err := walk(child, accessor); err != nil {
					return err
				}
				continue
			}
			files, err := c.filenames(child)
			if err != nil {
				return err
			}
			sets = append(sets, api.ImageSet{
				Name:      child.Name(),
				Accessor:  accessor,
				Path:      child.Path,
				Filenames: files,
			})
		}
		return nil
	}
	if err := walk(c.tree, c.TypeName()); err != nil {
		return nil, err
	}
	return sets, nil
}

func (c *Catalog) filenames(n *tree.Node) ([]string, error) {
	p := filepath.Join(n.Path, ContentsFileName)
	data, err := c.store.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	doc, err := c.store.ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	var files []string
	for _, v := range filenamesPath.Get(doc) {
		if s, ok := v.(string); ok {
			files = append(files, s)
		}
	}
	return files, nil
}
