package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pydevtool/pydev/pkg"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Sync dependencies into the virtual environment",
	Long: `Syncs the dependencies declared in pyproject.toml into the virtual
environment. There is no rollback: if the sync fails halfway, the
environment is left as-is and a later install continues from there.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pkg.OpenProject()
		if err != nil {
			return err
		}

		if err := p.RequireVenv(); err != nil {
			return err
		}
		if err := p.RequireManifest(); err != nil {
			return err
		}

		return withHooks("install", p, func() error {
			pkg.PrintTask("Syncing dependencies")
			return pkg.RunTool(p.Root, nil, settings.UV, "sync")
		})
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
