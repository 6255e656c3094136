package journal

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemCache(t *testing.T) {
	c := NewFilesystemCache(t.TempDir())

	_, err := c.Get("missing.pdf")
	if !IsNotFound(err) {
		t.Errorf("expected NotFound for missing entry, got %v", err)
	}

	err = c.Put("emma.pdf", strings.NewReader("%PDF-1.3"))
	require.NoError(t, err)

	r, err := c.Get("emma.pdf")
	require.NoError(t, err)
	data, err := ioutil.ReadAll(r)
	r.Close()
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(data))

	size, err := c.Size("emma.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(8), size)

	require.NoError(t, c.Delete("emma.pdf"))
	_, err = c.Get("emma.pdf")
	assert.True(t, IsNotFound(err))

	// deleting twice is fine
	assert.NoError(t, c.Delete("emma.pdf"))
}

func TestFilesystemCacheKeyEscape(t *testing.T) {
	dir := t.TempDir()
	c := NewFilesystemCache(dir)
	require.NoError(t, c.Put("../outside.pdf", strings.NewReader("x")))

	require.NoError(t, c.Put("nested/dir/inside.pdf", strings.NewReader("y")))

	// entries end up inside the cache directory
	_, err := c.Get("outside.pdf")
	assert.NoError(t, err)
	_, err = c.Get("inside.pdf")
	assert.NoError(t, err)

	files, err := ioutil.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(files))
	for _, fi := range files {
		names = append(names, fi.Name())
	}
	assert.ElementsMatch(t, []string{"outside.pdf", "inside.pdf"}, names)

	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "outside.pdf"))
	assert.True(t, os.IsNotExist(err))
}
