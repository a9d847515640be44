package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pydevtool/pydev/pkg"
)

func cleanCaches(p *pkg.Project) {
	targets := pkg.ScanCleanTargets(p.Root, p.Venv, p.CleanExtra)
	if len(targets) == 0 {
		pkg.PrintTask("Nothing to clean")
		return
	}

	pkg.PrintTask(fmt.Sprintf("Removing %d cache/artifact entries", len(targets)))
	removed := pkg.RemoveTargets(targets, !settings.NoProgress)
	pkg.PrintSubtask(fmt.Sprintf("removed %d of %d entries", removed, len(targets)))
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete caches, coverage data and build output",
	Long: `Recursively deletes bytecode caches, test/lint/type-check caches,
coverage data and build output. Deletion errors are ignored; the virtual
environment is left alone (see obliviate).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pkg.OpenProject()
		if err != nil {
			return err
		}

		return withHooks("clean", p, func() error {
			cleanCaches(p)
			return nil
		})
	},
}

var obliviateCmd = &cobra.Command{
	Use:   "obliviate",
	Short: "Clean and remove the virtual environment",
	Long: `Runs clean and then deletes the virtual environment directory. Running
it again is a no-op, so a half-finished obliviate can simply be repeated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pkg.OpenProject()
		if err != nil {
			return err
		}

		return withHooks("obliviate", p, func() error {
			cleanCaches(p)

			if !p.HasVenv() {
				return nil
			}

			pkg.PrintTask("Removing " + p.Venv)
			err := os.RemoveAll(p.VenvPath())
			if err != nil {
				log.Debug().Err(err).Msgf("Could not delete %s", p.VenvPath())
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(obliviateCmd)
}
