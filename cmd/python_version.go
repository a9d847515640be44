package cmd

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/pydevtool/pydev/pkg"
)

var pythonVersionCmd = &cobra.Command{
	Use:   "python-version",
	Short: "Show the resolved Python version and what's installable",
	Long: `Prints the Python version init would use, where it came from (the
.python-version pin file or the built-in fallback) and, when uv is
available, which versions uv can provide.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pkg.OpenProject()
		if err != nil {
			return err
		}

		version, source := p.ResolvePython()
		pkg.PrintTask(fmt.Sprintf("Python %s (%s)", version, source))

		uv, err := exec.LookPath(settings.UV)
		if err != nil {
			pkg.PrintWarning("uv is not installed, cannot list available versions")
			return nil
		}

		out, err := pkg.CaptureTool(p.Root, uv, "python", "list")
		if err != nil {
			pkg.PrintWarning("could not list available versions: " + err.Error())
			return nil
		}

		versions := pkg.ParsePythonList(out)
		if len(versions) == 0 {
			pkg.PrintWarning("uv reported no available versions")
			return nil
		}

		pkg.PrintSubtask("available:")
		for _, ver := range versions {
			pkg.PrintSubtask("  " + ver)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pythonVersionCmd)
}
