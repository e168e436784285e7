package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"srcbundle/pkg/bundle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// resetBundleFlags restores the bundle command's flag variables between
// executions; cobra only applies the declared defaults once, at init.
func resetBundleFlags() {
	bundleLanguage = ""
	bundleOutput = ""
	bundleNote = false
	bundleSort = bundle.SortByName
	bundleRemoveEmpty = false
	bundleAuthor = ""
}

func runInTempDir(t *testing.T, files map[string]string, args []string) error {
	t.Helper()
	resetBundleFlags()
	logger = zap.NewNop()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

func TestBundleCommand_EndToEnd(t *testing.T) {
	err := runInTempDir(t, map[string]string{
		"a.py": "print('a')\n",
		"b.js": "console.log('b')\n",
		"c.py": "print('c')\n",
	}, []string{"bundle", "--language", "py", "--sort", "name", "--output", "out.txt"})
	require.NoError(t, err)

	content, err := os.ReadFile("out.txt")
	require.NoError(t, err)
	assert.Equal(t, "print('a')\nprint('c')\n", string(content))
}

func TestBundleCommand_MissingLanguage(t *testing.T) {
	err := runInTempDir(t, map[string]string{
		"a.py": "print('a')\n",
	}, []string{"bundle", "--output", "out.txt"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "language")

	_, statErr := os.Stat("out.txt")
	assert.True(t, os.IsNotExist(statErr), "no output file may be created on validation failure")
}
