package cmd

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/pydevtool/pydev/pkg"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the project virtual environment",
	Long: `Creates the virtual environment with the Python version from the
.python-version pin file (or the built-in fallback when no pin exists).
Fails if the environment directory is already present.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pkg.OpenProject()
		if err != nil {
			return err
		}

		if p.HasVenv() {
			return eris.Errorf("%s already exists, run `pydev obliviate` to start over", p.Venv)
		}

		return withHooks("init", p, func() error {
			version, source := p.ResolvePython()
			pkg.PrintTask(fmt.Sprintf("Creating virtual environment (Python %s, %s)", version, source))
			return pkg.RunTool(p.Root, nil, settings.UV, "venv", "--python", version, p.Venv)
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
