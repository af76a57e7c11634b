// Package debian orchestrates the Debian package build for the DSP
// profiles. It performs the pre-flight checks, delegates the actual
// packaging to dpkg-buildpackage and cleans up artifacts from previous
// builds.
package debian

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// Project is a checkout of the profile packaging repository.
type Project struct {
	Root     string
	Package  string
	Profiles []string
}

func New(root, pkgName string, profiles []string) *Project {
	return &Project{
		Root:     root,
		Package:  pkgName,
		Profiles: profiles,
	}
}

// swapped out in tests
var (
	execCommand = exec.CommandContext
	lookPath    = exec.LookPath
)

// FindRoot walks up from start until it finds a directory that contains
// the marker file (usually debian/control).
func FindRoot(start, marker string) (string, error) {
	path, err := filepath.Abs(start)
	if err != nil {
		return "", eris.Wrapf(err, "failed to resolve %s", start)
	}

	for {
		_, err := os.Stat(filepath.Join(path, marker))
		if err == nil {
			return path, nil
		}
		if !eris.Is(err, os.ErrNotExist) {
			return "", eris.Wrapf(err, "failed to check %s", filepath.Join(path, marker))
		}

		parent := filepath.Dir(path)
		if parent == path {
			break
		}
		path = parent
	}

	return "", eris.Errorf("%s not found in %s or any parent directory; this doesn't look like the packaging checkout", marker, start)
}

// checkProfiles verifies that every required profile file exists. The
// first missing file aborts the build.
func (p *Project) checkProfiles() error {
	for _, name := range p.Profiles {
		_, err := os.Stat(filepath.Join(p.Root, name))
		if err != nil {
			if eris.Is(err, os.ErrNotExist) {
				return eris.Errorf("required profile %s is missing", name)
			}
			return eris.Wrapf(err, "failed to check %s", name)
		}
	}

	return nil
}

// artifactPatterns returns everything a build leaves behind, relative to
// the project root.
func (p *Project) artifactPatterns() []string {
	return []string{
		filepath.Join("debian", p.Package),
		filepath.Join("debian", ".debhelper"),
		filepath.Join("debian", "files"),
		filepath.Join("debian", "debhelper-build-stamp"),
		filepath.Join("debian", "*.substvars"),
		filepath.Join("debian", "*.log"),
		filepath.Join("..", p.Package+"_*.deb"),
		filepath.Join("..", p.Package+"_*.buildinfo"),
		filepath.Join("..", p.Package+"_*.changes"),
	}
}

// Artifacts returns the generated package files with the given extension
// from the parent directory.
func (p *Project) Artifacts(ext string) ([]string, error) {
	return resolvePatterns(p.Root, []string{
		filepath.Join("..", p.Package+"_*."+ext),
	})
}
