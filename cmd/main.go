package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pydevtool/pydev/pkg"
	"github.com/pydevtool/pydev/pkg/config"
	"github.com/pydevtool/pydev/pkg/hooks"
)

var settings *config.Settings

var rootCmd = &cobra.Command{
	Use:   "pydev",
	Short: "Workflow commands for uv-managed Python projects",
	Long: `pydev bundles the repetitive commands of a uv-based Python project behind
short names: environment setup, dependency sync, running the app, linting,
formatting, packaging and cache cleanup.

Most commands expect the virtual environment to exist; create it with
"pydev init" and remove every trace again with "pydev obliviate".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, loader := config.Loader()
		if err := loader.Load(); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		zerolog.SetGlobalLevel(cfg.LogLevel())
		if cfg.Log.JSON {
			log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		} else {
			log.Logger = zerolog.New(NewConsoleWriter())
		}

		settings = cfg
		return nil
	},
}

// Execute dispatches to the requested command and translates the error into
// the process exit status. Precondition failures exit 1; a wrapped tool's
// own exit status passes through unmodified.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	pkg.PrintError(err.Error())
	if os.Getenv("PYDEV_DEBUG") != "" {
		fmt.Fprintln(os.Stderr, eris.ToString(err, true))
	}

	var toolErr *pkg.ToolError
	if errors.As(err, &toolErr) {
		os.Exit(toolErr.ExitCode())
	}

	if code, ok := hooks.ExitCode(err); ok && code != 0 {
		os.Exit(code)
	}

	os.Exit(1)
}
