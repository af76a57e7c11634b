package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hifiberry/dspprofiles/pkg"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Builds and installs the package",
	Long: `Runs the package build and installs the resulting .deb with dpkg.
The installation step needs root privileges and is run through sudo.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cfg, err := toolContext()
		if err != nil {
			return err
		}

		proj, err := openProject(cfg)
		if err != nil {
			return err
		}

		pkg.PrintTask("Building and installing " + cfg.Package)
		err = proj.Install(ctx)
		if err != nil {
			return err
		}

		pkg.PrintTask("Done")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
