package debian

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePatternsGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.log"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), nil, 0o644))

	matches, err := resolvePatterns(dir, []string{"*.log"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.log"),
		filepath.Join(dir, "b.log"),
	}, matches)
}

func TestResolvePatternsDropsUnmatchedGlobs(t *testing.T) {
	dir := t.TempDir()

	matches, err := resolvePatterns(dir, []string{"*.deb", "debian/*.log"})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestResolvePatternsKeepsLiteralPaths(t *testing.T) {
	dir := t.TempDir()

	// literal paths pass through untouched, even when they don't exist;
	// removal treats them as best-effort anyway
	matches, err := resolvePatterns(dir, []string{filepath.Join("debian", "files")})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "debian", "files")}, matches)
}

func TestResolvePatternsParentDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "checkout")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pkg_1.0_all.deb"), nil, 0o644))

	matches, err := resolvePatterns(sub, []string{"../pkg_*.deb"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "pkg_1.0_all.deb")}, matches)
}
