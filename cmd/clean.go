package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hifiberry/dspprofiles/pkg"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Removes build artifacts",
	Long: `Removes the directories and files left behind by previous package
builds, including the generated package files in the parent directory.
All removals are best-effort.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cfg, err := toolContext()
		if err != nil {
			return err
		}

		proj, err := openProject(cfg)
		if err != nil {
			return err
		}

		pkg.PrintTask("Cleaning build artifacts")
		err = proj.Clean(ctx)
		if err != nil {
			return err
		}

		pkg.PrintTask("Done")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
