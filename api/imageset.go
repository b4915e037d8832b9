package api

// ImageSet summarizes one validated image set in a catalog.
type ImageSet struct {
	// Name is the asset name as it appears on disk, without the extension.
	// It is the runtime lookup key.
	Name string `json:"name"`
	// Accessor is the dotted path of the generated accessor,
	// e.g. "AssetsCatalog.buttons.play".
	Accessor string `json:"accessor"`
	// Path is the image set directory.
	Path string `json:"path"`
	// Filenames lists the non-null filename entries of Contents.json.
	Filenames []string `json:"filenames,omitempty"`
}
