package cmd

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/pydevtool/pydev/pkg"
)

// resolveRuff locates ruff inside the virtual environment. It is installed
// there as a dev dependency, so a missing binary means install wasn't run.
func resolveRuff(p *pkg.Project) (string, error) {
	if err := p.RequireVenv(); err != nil {
		return "", err
	}

	ruff := p.VenvBin("ruff")
	_, err := os.Stat(ruff)
	if err != nil {
		if eris.Is(err, os.ErrNotExist) {
			return "", eris.Errorf("ruff not found in %s, run `pydev install` first", p.Venv)
		}
		return "", eris.Wrapf(err, "failed to check %s", ruff)
	}

	return ruff, nil
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Run the linter over the application sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pkg.OpenProject()
		if err != nil {
			return err
		}

		ruff, err := resolveRuff(p)
		if err != nil {
			return err
		}

		return withHooks("lint", p, func() error {
			pkg.PrintTask("Linting " + p.Src)
			return pkg.RunTool(p.Root, nil, ruff, "check", p.Src)
		})
	},
}

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Auto-format the application sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pkg.OpenProject()
		if err != nil {
			return err
		}

		ruff, err := resolveRuff(p)
		if err != nil {
			return err
		}

		return withHooks("format", p, func() error {
			pkg.PrintTask("Formatting " + p.Src)
			return pkg.RunTool(p.Root, nil, ruff, "format", p.Src)
		})
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(formatCmd)
}
