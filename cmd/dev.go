package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pydevtool/pydev/pkg"
)

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Run the application entry module in development mode",
	Long: `Runs the application entry module (appModule in pydev.yml, app.main by
default) through uv with the development flag set in its environment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pkg.OpenProject()
		if err != nil {
			return err
		}

		if err := p.RequireVenv(); err != nil {
			return err
		}

		return withHooks("dev", p, func() error {
			pkg.PrintTask(fmt.Sprintf("Running %s (%s=1)", p.AppModule, p.DevVar))
			env := []string{p.DevVar + "=1"}
			return pkg.RunTool(p.Root, env, settings.UV, "run", "python", "-m", p.AppModule)
		})
	},
}

func init() {
	rootCmd.AddCommand(devCmd)
}
