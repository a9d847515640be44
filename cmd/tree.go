package cmd

import (
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pydevtool/pydev/pkg"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the project tree without caches and build output",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pkg.OpenProject()
		if err != nil {
			return err
		}

		path, err := exec.LookPath(settings.Tree)
		if err != nil {
			pkg.PrintWarning("tree is not installed, skipping")
			return nil
		}

		excludes := append([]string{p.Venv, ".git"}, pkg.CleanNames()...)
		return pkg.RunTool(p.Root, nil, path, "-I", strings.Join(excludes, "|"))
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
