package bundle

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	return fs
}

func fileNames(files []File) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}

func TestEnumerate_TopLevelOnly(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/src/a.py":        "print('a')\n",
		"/src/b.js":        "console.log('b')\n",
		"/src/sub/c.py":    "print('c')\n",
		"/src/sub/deep.go": "package deep\n",
	})

	files, err := Enumerate(fs, "/src", zap.NewNop())

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.py", "b.js"}, fileNames(files))
}

func TestEnumerate_MissingDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Enumerate(fs, "/nope", zap.NewNop())

	require.Error(t, err)
}

func TestEnumerate_PopulatesDescriptor(t *testing.T) {
	fs := newTestFs(t, map[string]string{"/src/main.PY": "pass\n"})

	files, err := Enumerate(fs, "/src", zap.NewNop())

	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "main.PY", files[0].Name)
	assert.Equal(t, "/src/main.PY", files[0].Path)
	assert.Equal(t, ".PY", files[0].Ext)
}

func TestFilter_AllSentinelPassesEverything(t *testing.T) {
	files := []File{
		{Name: "a.py", Ext: ".py"},
		{Name: "b.js", Ext: ".js"},
		{Name: "Makefile", Ext: ""},
	}
	cfg := &Config{Languages: []string{"All"}}

	assert.Equal(t, files, Filter(files, cfg))
}

func TestFilter_ByExtensionCaseInsensitive(t *testing.T) {
	files := []File{
		{Name: "a.py", Ext: ".py"},
		{Name: "b.js", Ext: ".js"},
		{Name: "C.PY", Ext: ".PY"},
		{Name: "d.go", Ext: ".go"},
	}
	cfg := &Config{Languages: []string{"py", "go"}}

	got := Filter(files, cfg)

	assert.Equal(t, []string{"a.py", "C.PY", "d.go"}, fileNames(got))
}

func TestFilter_NoMatches(t *testing.T) {
	files := []File{{Name: "a.py", Ext: ".py"}}
	cfg := &Config{Languages: []string{"rs"}}

	assert.Empty(t, Filter(files, cfg))
}
