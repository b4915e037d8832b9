package catalog

import (
	"github.com/agentic-research/assetgen/internal/tree"
)

const (
	// ImageSetExtension marks a directory as an image set.
	ImageSetExtension = ".imageset"
	// ContentsFileName is the metadata file every image set must carry.
	ContentsFileName = "Contents.json"
	// NameSuffix is appended to the catalog's base name.
	NameSuffix = "Catalog"
)

// ContentStore reads file bytes and decodes JSON into generic values.
type ContentStore interface {
	ReadFile(path string) ([]byte, error)
	ParseJSON(data []byte) (any, error)
}

// Validator decides which tree nodes belong in a catalog.
type Validator struct {
	store ContentStore
}

// NewValidator returns a Validator that reads metadata through store.
func NewValidator(store ContentStore) *Validator {
	return &Validator{store: store}
}

// Keep reports whether n is a group or a valid image set. Files are never
// kept, nor are directories with any other extension.
func (v *Validator) Keep(n *tree.Node) bool {
	return v.Reject(n) == ""
}

// Reject returns why n does not belong in a catalog, or "" when it does.
func (v *Validator) Reject(n *tree.Node) string {
	if n.IsLeaf {
		return "file"
	}
	switch ext := n.Ext(); ext {
	case "", ".":
		return ""
	case ImageSetExtension:
		return v.rejectImageSet(n)
	default:
		return "unknown extension " + ext
	}
}

// IsValidImageSet reports whether n is an image set directory whose
// Contents.json is an object with an "images" array of objects, at least one
// of which names a file. n must still hold its unfiltered children.
func (v *Validator) IsValidImageSet(n *tree.Node) bool {
	if n.IsLeaf || n.Ext() != ImageSetExtension {
		return false
	}
	return v.rejectImageSet(n) == ""
}

func (v *Validator) rejectImageSet(n *tree.Node) string {
	contents := n.Child(ContentsFileName)
	if contents == nil || !contents.IsLeaf {
		return "no " + ContentsFileName
	}
	data, err := v.store.ReadFile(contents.Path)
	if err != nil {
		return "unreadable " + ContentsFileName
	}
	doc, err := v.store.ParseJSON(data)
	if err != nil {
		return "invalid JSON"
	}
	images, ok := imageEntries(doc)
	if !ok {
		return "no images array of objects"
	}
	for _, img := range images {
		if img["filename"] != nil {
			return ""
		}
	}
	return "no image has a filename"
}

// imageEntries extracts the "images" array from a decoded Contents.json.
// Every element must be an object.
func imageEntries(doc any) ([]map[string]any, bool) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, false
	}
	raw, ok := obj["images"].([]any)
	if !ok {
		return nil, false
	}
	images := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		img, ok := r.(map[string]any)
		if !ok {
			return nil, false
		}
		images = append(images, img)
	}
	return images, true
}
