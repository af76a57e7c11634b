package cmd

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hifiberry/dspprofiles/pkg/config"
	"github.com/hifiberry/dspprofiles/pkg/debian"
)

var rootCmd = &cobra.Command{
	Use:   "dsptool",
	Short: "Build tools for the HiFiBerry DSP profile package",
	Long: `This command bundles the tools used to build and maintain the DSP profile
Debian package. This includes the package build itself, artifact cleanup and
helpers to process SigmaStudio .params exports.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// toolContext loads the configuration and prepares a context with an
// attached console logger. Every command starts here.
func toolContext() (context.Context, *config.Config, error) {
	cfg, loader := config.Loader()
	err := loader.Load()
	if err != nil {
		return nil, nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, nil, err
	}

	logger := zerolog.New(NewConsoleWriter()).Level(cfg.LogLevel())
	ctx := debian.WithLogger(context.Background(), &logger)
	return ctx, cfg, nil
}

// openProject locates the packaging root (identified by the marker file,
// usually debian/control) starting at the current working directory.
func openProject(cfg *config.Config) (*debian.Project, error) {
	root, err := debian.FindRoot(".", cfg.Marker)
	if err != nil {
		return nil, err
	}

	return debian.New(root, cfg.Package, cfg.Profiles), nil
}
