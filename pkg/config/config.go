// Package config loads pydev's ambient settings from the environment and
// an optional pydev.toml. Project-level behavior lives in pydev.yml instead.
package config

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigtoml"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Settings describes all tool-level options
type Settings struct {
	UV   string `default:"uv" usage:"uv binary to invoke"`
	Tree string `default:"tree" usage:"tree binary to invoke"`
	Log  struct {
		Level string `default:"info"`
		JSON  bool   `default:"false" usage:"Output JSON instead of pretty console messages"`
	}
	NoProgress bool `default:"false" usage:"Disable progress bars"`
}

var logLevels = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
	"fatal":   zerolog.FatalLevel,
}

// Loader initializes an empty settings object and returns a new Loader for
// this object. Flag parsing is skipped, cobra owns the command line.
func Loader() (*Settings, *aconfig.Loader) {
	cfg := Settings{}
	return &cfg, aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "PYDEV",
		SkipFlags: true,
		Files:     []string{"pydev.toml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".toml": aconfigtoml.New(),
		},
	})
}

// Validate verifies that all settings fields have valid values
func (cfg *Settings) Validate() error {
	if cfg.UV == "" {
		return eris.New("uv must not be empty")
	}

	_, ok := logLevels[cfg.Log.Level]
	if !ok {
		return eris.Errorf("invalid value for log.level: %s", cfg.Log.Level)
	}

	return nil
}

// LogLevel converts the .Log.Level field to a zerolog.Level
func (cfg *Settings) LogLevel() zerolog.Level {
	return logLevels[cfg.Log.Level]
}
