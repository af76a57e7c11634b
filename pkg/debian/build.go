package debian

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
)

// Build runs the package build: pre-flight checks, removal of stale
// artifacts and the dpkg-buildpackage invocation. On success it returns
// the produced .deb files from the parent directory.
func (p *Project) Build(ctx context.Context) ([]string, error) {
	err := p.checkProfiles()
	if err != nil {
		return nil, err
	}

	p.removeArtifacts(ctx)

	log(ctx).Info().Str("task", "build").Msg("running dpkg-buildpackage")
	cmd := execCommand(ctx, "dpkg-buildpackage", "-us", "-uc", "-b")
	cmd.Dir = p.Root
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err = cmd.Run()
	if err != nil {
		return nil, eris.Wrap(err, "dpkg-buildpackage failed")
	}

	// listing the result is best-effort, a missing glob match is not fatal
	artifacts, err := p.Artifacts("deb")
	if err != nil {
		log(ctx).Warn().Str("task", "build").Msgf("failed to list artifacts: %s", err)
		return nil, nil
	}

	return artifacts, nil
}

// removeArtifacts deletes everything a previous build left behind. All
// removals are best-effort and never fail the surrounding operation.
func (p *Project) removeArtifacts(ctx context.Context) {
	matches, err := resolvePatterns(p.Root, p.artifactPatterns())
	if err != nil {
		log(ctx).Warn().Str("task", "clean").Msgf("failed to resolve artifact patterns: %s", err)
		return
	}

	for _, item := range matches {
		log(ctx).Debug().Str("task", "clean").Msgf("removing %s", item)
		err = os.RemoveAll(item)
		if err != nil {
			log(ctx).Warn().Str("task", "clean").Msgf("failed to remove %s: %s", item, err)
		}
	}
}
