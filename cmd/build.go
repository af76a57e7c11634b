package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hifiberry/dspprofiles/pkg"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the DSP profile Debian package",
	Long: `Verifies that all profile files are present, removes stale build
artifacts and runs dpkg-buildpackage. The produced .deb ends up in the
parent directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cfg, err := toolContext()
		if err != nil {
			return err
		}

		proj, err := openProject(cfg)
		if err != nil {
			return err
		}

		pkg.PrintTask("Building " + cfg.Package)
		artifacts, err := proj.Build(ctx)
		if err != nil {
			return err
		}

		for _, item := range artifacts {
			pkg.PrintSubtask(item)
		}
		pkg.PrintTask("Done")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
