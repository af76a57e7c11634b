package config

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigtoml"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config describes all configuration options
type Config struct {
	Package string `default:"hifiberry-dsp-profiles" usage:"Name of the generated Debian package"`
	Marker  string `default:"debian/control" usage:"File that identifies the packaging root"`

	// Profiles are checked for existence before a build is attempted.
	Profiles []string `default:"beocreate-universal-11.xml,dacdsp-universal-15.xml,dsp-addon-14.xml" usage:"Profile files required for a build"`

	Log struct {
		Level string `default:"info"`
	}
}

var logLevels = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
	"fatal":   zerolog.FatalLevel,
}

// Loader initializes an empty config object and returns a new Loader for this object
func Loader() (*Config, *aconfig.Loader) {
	cfg := Config{}
	return &cfg, aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix:  "DSPTOOL",
		FlagPrefix: "cfg",
		SkipFlags:  true,
		Files:      []string{"dsptool.toml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".toml": aconfigtoml.New(),
		},
	})
}

// Validate verifies that all config fields have valid values
func (cfg *Config) Validate() error {
	if cfg.Package == "" {
		return eris.New("package must not be empty")
	}

	if len(cfg.Profiles) == 0 {
		return eris.New("at least one profile file must be configured")
	}

	_, ok := logLevels[cfg.Log.Level]
	if !ok {
		return eris.Errorf(`Invalid value for log.level: %s`, cfg.Log.Level)
	}

	return nil
}

// LogLevel converts the .Log.Level field to a zerolog.Level
func (cfg *Config) LogLevel() zerolog.Level {
	return logLevels[cfg.Log.Level]
}
