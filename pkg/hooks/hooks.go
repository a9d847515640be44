// Package hooks runs the pre/post command scripts declared in pydev.yml
// through an embedded POSIX shell so hook behavior doesn't depend on the
// host shell.
package hooks

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aidarkhanov/nanoid"
	"github.com/rotisserie/eris"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Script is one hook body together with the context it runs in.
type Script struct {
	Name string
	Body string
	Dir  string
	Env  map[string]string
}

func scriptEnv(s Script) expand.Environ {
	envVars := os.Environ()

	for name, value := range s.Env {
		envVars = append(envVars, fmt.Sprintf("%s=%s", name, value))
	}

	return expand.ListEnviron(envVars...)
}

// Run executes the hook with -e semantics: the first failing statement
// aborts the script and its exit status becomes the returned error.
func Run(ctx context.Context, s Script) error {
	logger := log(ctx).With().
		Str("hook", s.Name).
		Str("run", nanoid.New()).
		Logger()

	parser := syntax.NewParser()
	file, err := parser.Parse(strings.NewReader(s.Body), s.Name)
	if err != nil {
		return eris.Wrapf(err, "failed to parse hook %s", s.Name)
	}

	runner, err := interp.New(
		interp.Dir(s.Dir),
		interp.Env(scriptEnv(s)),
		interp.StdIO(nil, os.Stdout, os.Stderr),
		interp.Params("-e"),
	)
	if err != nil {
		return eris.Wrap(err, "failed to initialize hook runner")
	}

	printer := syntax.NewPrinter(
		syntax.Minify(true),
	)
	strBuffer := strings.Builder{}

	for _, stmt := range file.Stmts {
		strBuffer.Reset()
		printer.Print(&strBuffer, stmt)
		logger.Info().
			Bool("command", true).
			Msg(strBuffer.String())

		err = runner.Run(ctx, stmt)
		if err != nil {
			return err
		}

		if runner.Exited() {
			return nil
		}
	}

	return nil
}

// ExitCode extracts the shell exit status from an error returned by Run.
func ExitCode(err error) (int, bool) {
	if status, ok := interp.IsExitStatus(err); ok {
		return int(status), true
	}
	return 0, false
}
