package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultModeIsLight(t *testing.T) {
	t.Parallel()

	ctrl := NewController(t.TempDir())

	assert.Equal(t, ModeLight, ctrl.Mode())
}

func TestInvalidPersistedValueDefaultsToLight(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme"), []byte("purple"), 0644))

	ctrl := NewController(dir)

	assert.Equal(t, ModeLight, ctrl.Mode())
}

func TestTogglePersistsAcrossReload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	ctrl := NewController(dir)
	assert.Equal(t, ModeDark, ctrl.Toggle())

	// Simulated reload
	reloaded := NewController(dir)
	assert.Equal(t, ModeDark, reloaded.Mode())
}

func TestToggleTwiceReturnsToOriginal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	ctrl := NewController(dir)
	original := ctrl.Mode()

	ctrl.Toggle()
	ctrl.Toggle()

	assert.Equal(t, original, ctrl.Mode())
	assert.Equal(t, original, NewController(dir).Mode())
}

func TestUnavailableStorageIsNotFatal(t *testing.T) {
	t.Parallel()

	// Directory that does not exist: reads fail, writes fail, still usable
	ctrl := NewController(filepath.Join(t.TempDir(), "missing", "deeper"))

	assert.Equal(t, ModeLight, ctrl.Mode())
	assert.Equal(t, ModeDark, ctrl.Toggle())
}

func TestSchemeMatchesMode(t *testing.T) {
	t.Parallel()

	ctrl := NewController(t.TempDir())
	assert.Equal(t, LightScheme(), ctrl.Scheme())

	ctrl.Toggle()
	assert.Equal(t, DarkScheme(), ctrl.Scheme())
}

func TestSchemeFileOverrides(t *testing.T) {
	// t.Setenv is incompatible with t.Parallel

	overrideFile := filepath.Join(t.TempDir(), "scheme.yaml")
	require.NoError(t, os.WriteFile(overrideFile, []byte("dark:\n  title: \"201\"\n"), 0644))
	t.Setenv("ERPX_THEME_FILE", overrideFile)

	ctrl := NewController(t.TempDir())
	ctrl.Toggle() // dark

	scheme := ctrl.Scheme()
	assert.Equal(t, "201", scheme.Title)
	// Colors not named in the file keep their defaults
	assert.Equal(t, DarkScheme().Error, scheme.Error)
}
