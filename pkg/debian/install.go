package debian

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
)

// Install builds the package and installs the produced .deb with dpkg.
// dpkg needs root privileges, so the call goes through sudo.
func (p *Project) Install(ctx context.Context) error {
	artifacts, err := p.Build(ctx)
	if err != nil {
		return err
	}

	if len(artifacts) == 0 {
		return eris.Errorf("no %s_*.deb artifact found after the build", p.Package)
	}

	args := append([]string{"dpkg", "-i"}, artifacts...)
	log(ctx).Info().Str("task", "install").Msgf("installing %s", artifacts[0])

	cmd := execCommand(ctx, "sudo", args...)
	cmd.Dir = p.Root
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err = cmd.Run()
	if err != nil {
		return eris.Wrap(err, "dpkg -i failed")
	}

	return nil
}
