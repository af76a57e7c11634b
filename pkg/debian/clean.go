package debian

import (
	"context"
	"os"
)

// Clean removes the artifacts of previous builds. Apart from locating
// the project root (which happens before this call) the operation cannot
// fail; every removal is best-effort.
func (p *Project) Clean(ctx context.Context) error {
	p.removeArtifacts(ctx)

	// dh_clean knows about debhelper files we don't track; use it if available
	helper, err := lookPath("dh_clean")
	if err == nil {
		log(ctx).Info().Str("task", "clean").Msg("running dh_clean")
		cmd := execCommand(ctx, helper)
		cmd.Dir = p.Root
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		err = cmd.Run()
		if err != nil {
			log(ctx).Warn().Str("task", "clean").Msgf("dh_clean failed: %s", err)
		}
	}

	return nil
}
