package debian

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMissingProfile(t *testing.T) {
	proj := newTestProject(t)
	require.NoError(t, os.Remove(filepath.Join(proj.Root, "dacdsp-universal-15.xml")))

	calls := stubExec(t, "true")
	_, err := proj.Build(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dacdsp-universal-15.xml")
	assert.Empty(t, *calls, "the packaging tool must not run when a profile is missing")
}

func TestBuildNamesFirstMissingProfile(t *testing.T) {
	proj := newTestProject(t)
	require.NoError(t, os.Remove(filepath.Join(proj.Root, "beocreate-universal-11.xml")))
	require.NoError(t, os.Remove(filepath.Join(proj.Root, "dsp-addon-14.xml")))

	stubExec(t, "true")
	_, err := proj.Build(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "beocreate-universal-11.xml")
}

func TestBuildSuccess(t *testing.T) {
	proj := newTestProject(t)
	calls := stubExec(t, "touch ../hifiberry-dsp-profiles_1.0_all.deb")

	artifacts, err := proj.Build(testContext())
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"dpkg-buildpackage", "-us", "-uc", "-b"}, (*calls)[0])

	require.Len(t, artifacts, 1)
	assert.Equal(t, "hifiberry-dsp-profiles_1.0_all.deb", filepath.Base(artifacts[0]))
}

func TestBuildToolFailure(t *testing.T) {
	proj := newTestProject(t)
	stubExec(t, "exit 1")

	_, err := proj.Build(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dpkg-buildpackage")
}

func TestBuildRemovesStaleArtifacts(t *testing.T) {
	proj := newTestProject(t)
	parent := filepath.Dir(proj.Root)

	staleDeb := filepath.Join(parent, "hifiberry-dsp-profiles_0.9_all.deb")
	staleFiles := filepath.Join(proj.Root, "debian", "files")
	require.NoError(t, os.WriteFile(staleDeb, []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(staleFiles, []byte("old"), 0o644))

	stubExec(t, "true")
	artifacts, err := proj.Build(testContext())
	require.NoError(t, err)

	assert.NoFileExists(t, staleDeb)
	assert.NoFileExists(t, staleFiles)
	assert.Empty(t, artifacts, "the stale package must not show up as a build result")
}

func TestInstall(t *testing.T) {
	proj := newTestProject(t)
	calls := stubExec(t, "touch ../hifiberry-dsp-profiles_1.0_all.deb")

	err := proj.Install(testContext())
	require.NoError(t, err)

	require.Len(t, *calls, 2)
	assert.Equal(t, []string{"dpkg-buildpackage", "-us", "-uc", "-b"}, (*calls)[0])
	require.GreaterOrEqual(t, len((*calls)[1]), 4)
	assert.Equal(t, []string{"sudo", "dpkg", "-i"}, (*calls)[1][:3])
	assert.Equal(t, "hifiberry-dsp-profiles_1.0_all.deb", filepath.Base((*calls)[1][3]))
}

func TestInstallWithoutArtifact(t *testing.T) {
	proj := newTestProject(t)
	calls := stubExec(t, "true")

	err := proj.Install(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no hifiberry-dsp-profiles_*.deb artifact")
	assert.Len(t, *calls, 1, "dpkg must not run without a package")
}
