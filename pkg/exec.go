package pkg

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rotisserie/eris"
)

// ToolError reports a wrapped tool that ran but exited non-zero. The exit
// status is passed through to the caller unmodified.
type ToolError struct {
	Tool string
	Err  *exec.ExitError
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.Err.ExitCode())
}

func (e *ToolError) Unwrap() error { return e.Err }

func (e *ToolError) ExitCode() int { return e.Err.ExitCode() }

// RunTool executes an external tool with its output attached to the
// terminal. extraEnv entries are appended to the inherited environment.
func RunTool(dir string, extraEnv []string, name string, args ...string) error {
	if os.Getenv("PYDEV_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "+ %s %s\n", name, strings.Join(args, " "))
	}

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), extraEnv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ToolError{Tool: name, Err: exitErr}
		}
		return eris.Wrapf(err, "failed to run %s", name)
	}

	return nil
}

// CaptureTool executes an external tool and returns its stdout.
func CaptureTool(dir, name string, args ...string) (string, error) {
	if os.Getenv("PYDEV_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "+ %s %s\n", name, strings.Join(args, " "))
	}

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), &ToolError{Tool: name, Err: exitErr}
		}
		return string(out), eris.Wrapf(err, "failed to run %s", name)
	}

	return string(out), nil
}
