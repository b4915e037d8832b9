package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/assetgen/api"
)

func TestGenerate_SingleImageSet(t *testing.T) {
	fsys := newCatalogFS(t, nil, map[string]string{
		"/Assets.xcassets/Logo.imageset/Contents.json": `{"images":[{"filename":"logo.png"}]}`,
		"/Assets.xcassets/Logo.imageset/logo.png":      "",
	})
	c := loadCatalog(t, fsys, "/Assets.xcassets")

	got, err := c.GenerateCode(api.PlatformIOS)
	require.NoError(t, err)
	assert.Equal(t, "struct AssetsCatalog {\n"+
		"    static var logo: UIImage { return UIImage(named: \"Logo\")! }\n"+
		"}\n", got)
}

func TestGenerate_MissingContentsGivesEmptyCatalog(t *testing.T) {
	fsys := newCatalogFS(t, nil, map[string]string{
		"/Assets.xcassets/Logo.imageset/logo.png": "",
	})
	c := loadCatalog(t, fsys, "/Assets.xcassets")

	got, err := c.GenerateCode(api.PlatformIOS)
	require.NoError(t, err)
	assert.Equal(t, "struct AssetsCatalog {\n}\n", got)
}

func TestGenerate_NestedGroup(t *testing.T) {
	fsys := newCatalogFS(t, nil, map[string]string{
		"/Assets.xcassets/Buttons/Play.imageset/Contents.json": validContents,
	})
	c := loadCatalog(t, fsys, "/Assets.xcassets")

	got, err := c.GenerateCode(api.PlatformIOS)
	require.NoError(t, err)
	assert.Equal(t, "struct AssetsCatalog {\n"+
		"    struct buttons {\n"+
		"        static var play: UIImage { return UIImage(named: \"Play\")! }\n"+
		"    }\n"+
		"}\n", got)
}

func TestGenerate_OSX(t *testing.T) {
	fsys := newCatalogFS(t, nil, map[string]string{
		"/Icons.xcassets/App Icon.imageset/Contents.json": validContents,
	})
	c := loadCatalog(t, fsys, "/Icons.xcassets")

	got, err := c.GenerateCode(api.PlatformOSX)
	require.NoError(t, err)
	assert.Equal(t, "struct IconsCatalog {\n"+
		"    static var appIcon: NSImage { return NSImage(named: \"App Icon\")! }\n"+
		"}\n", got)
}

func TestGenerate_EmptyGroupKept(t *testing.T) {
	fsys := newCatalogFS(t, []string{"/Assets.xcassets/Later/Sub"}, map[string]string{
		"/Assets.xcassets/Later/readme.md": "todo",
	})
	c := loadCatalog(t, fsys, "/Assets.xcassets")

	got, err := c.GenerateCode(api.PlatformIOS)
	require.NoError(t, err)
	assert.Equal(t, "struct AssetsCatalog {\n"+
		"    struct later {\n"+
		"        struct sub {\n"+
		"        }\n"+
		"    }\n"+
		"}\n", got)
}

func TestGenerate_DeterministicOrderAndIdempotent(t *testing.T) {
	fsys := newCatalogFS(t, nil, map[string]string{
		"/Assets.xcassets/zebra.imageset/Contents.json":          validContents,
		"/Assets.xcassets/Alpha.imageset/Contents.json":          validContents,
		"/Assets.xcassets/Nav/Back.imageset/Contents.json":       validContents,
		"/Assets.xcassets/Nav/Forward.imageset/Contents.json":    validContents,
		"/Assets.xcassets/Nav/Deep/Close.imageset/Contents.json": validContents,
	})

	first, err := loadCatalog(t, fsys, "/Assets.xcassets").GenerateCode(api.PlatformIOS)
	require.NoError(t, err)
	second, err := loadCatalog(t, fsys, "/Assets.xcassets").GenerateCode(api.PlatformIOS)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, "struct AssetsCatalog {\n"+
		"    static var alpha: UIImage { return UIImage(named: \"Alpha\")! }\n"+
		"    struct nav {\n"+
		"        static var back: UIImage { return UIImage(named: \"Back\")! }\n"+
		"        struct deep {\n"+
		"            static var close: UIImage { return UIImage(named: \"Close\")! }\n"+
		"        }\n"+
		"        static var forward: UIImage { return UIImage(named: \"Forward\")! }\n"+
		"    }\n"+
		"    static var zebra: UIImage { return UIImage(named: \"zebra\")! }\n"+
		"}\n", first)
}

func TestGenerate_Collision(t *testing.T) {
	fsys := newCatalogFS(t, nil, map[string]string{
		"/Assets.xcassets/App Icon.imageset/Contents.json": validContents,
		"/Assets.xcassets/app-icon.imageset/Contents.json": validContents,
	})
	c := loadCatalog(t, fsys, "/Assets.xcassets")

	_, err := c.GenerateCode(api.PlatformIOS)
	require.Error(t, err)

	var ce *CollisionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "/Assets.xcassets", ce.Parent)
	assert.Equal(t, "appIcon", ce.Identifier)
	assert.Equal(t, []string{"App Icon.imageset", "app-icon.imageset"}, ce.Names)
}

func TestGenerate_GroupAndImageSetCollide(t *testing.T) {
	fsys := newCatalogFS(t, nil, map[string]string{
		"/Assets.xcassets/Play/Small.imageset/Contents.json": validContents,
		"/Assets.xcassets/Play.imageset/Contents.json":       validContents,
	})
	c := loadCatalog(t, fsys, "/Assets.xcassets")

	_, err := c.GenerateCode(api.PlatformIOS)
	var ce *CollisionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "play", ce.Identifier)
}

func TestGenerate_EscapesLookupKey(t *testing.T) {
	fsys := newCatalogFS(t, nil, map[string]string{
		`/Assets.xcassets/say "hi".imageset/Contents.json`: validContents,
	})
	c := loadCatalog(t, fsys, "/Assets.xcassets")

	got, err := c.GenerateCode(api.PlatformIOS)
	require.NoError(t, err)
	assert.Contains(t, got, `static var sayHi: UIImage { return UIImage(named: "say \"hi\"")! }`)
}

func TestSourceFile(t *testing.T) {
	fsys := newCatalogFS(t, nil, map[string]string{
		"/Assets.xcassets/Logo.imageset/Contents.json": validContents,
	})
	c := loadCatalog(t, fsys, "/Assets.xcassets")

	got, err := SourceFile(c, api.PlatformOSX)
	require.NoError(t, err)
	assert.Equal(t, "// Code generated by assetgen. DO NOT EDIT.\n\n"+
		"import AppKit\n\n"+
		"struct AssetsCatalog {\n"+
		"    static var logo: NSImage { return NSImage(named: \"Logo\")! }\n"+
		"}\n", got)
}

func TestSourceFile_PropagatesCollision(t *testing.T) {
	fsys := newCatalogFS(t, nil, map[string]string{
		"/Assets.xcassets/a b.imageset/Contents.json": validContents,
		"/Assets.xcassets/a-b.imageset/Contents.json": validContents,
	})
	_, err := SourceFile(loadCatalog(t, fsys, "/Assets.xcassets"), api.PlatformIOS)
	var ce *CollisionError
	assert.ErrorAs(t, err, &ce)
}

func TestGenerate_DecomposedName(t *testing.T) {
	fsys := newCatalogFS(t, nil, map[string]string{
		"/Assets.xcassets/cafe\u0301 cre\u0300me.imageset/Contents.json": validContents,
	})
	c := loadCatalog(t, fsys, "/Assets.xcassets")

	got, err := c.GenerateCode(api.PlatformIOS)
	require.NoError(t, err)
	// The identifier is composed; the lookup key keeps the on-disk bytes.
	assert.Contains(t, got, "static var caf\u00e9Cr\u00e8me: UIImage { return UIImage(named: \"cafe\u0301 cre\u0300me\")! }")
}
