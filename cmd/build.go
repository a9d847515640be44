package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pydevtool/pydev/pkg"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build distributable artifacts",
	Long: `Invokes the build backend declared in pyproject.toml and writes the
resulting sdist/wheel into dist/. clean removes that directory again.`,
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

		return withHooks("build", p, func() error {
			pkg.PrintTask("Building distribution artifacts")
			return pkg.RunTool(p.Root, nil, settings.UV, "build")
		})
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
