package catalog

import (
	"path/filepath"
	"testing"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/assetgen/internal/store"
)

const validContents = `{"images":[{"idiom":"universal","filename":"img.png","scale":"1x"}],"info":{"version":1,"author":"xcode"}}`

// newCatalogFS creates dirs and files on a fresh in-memory filesystem.
func newCatalogFS(t *testing.T, dirs []string, files map[string]string) billy.Filesystem {
	t.Helper()
	fsys := memfs.New()
	for _, d := range dirs {
		require.NoError(t, fsys.MkdirAll(d, 0o755))
	}
	for p, content := range files {
		require.NoError(t, fsys.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, util.WriteFile(fsys, p, []byte(content), 0o644))
	}
	return fsys
}

func loadCatalog(t *testing.T, fsys billy.Filesystem, root string) *Catalog {
	t.Helper()
	c, err := Load(fsys, store.New(fsys), root)
	require.NoError(t, err)
	return c
}
