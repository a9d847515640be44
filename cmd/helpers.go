package cmd

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pydevtool/pydev/pkg"
	"github.com/pydevtool/pydev/pkg/hooks"
)

// withHooks wraps a command body with the pre-<name> and post-<name> hooks
// from pydev.yml. A failing pre hook prevents the body from running; a
// failing post hook fails the command after the body already ran.
func withHooks(name string, p *pkg.Project, run func() error) error {
	ctx := hooks.WithLogger(context.Background(), &log.Logger)

	if err := runHook(ctx, p, "pre-"+name); err != nil {
		return err
	}

	if err := run(); err != nil {
		return err
	}

	return runHook(ctx, p, "post-"+name)
}

func runHook(ctx context.Context, p *pkg.Project, name string) error {
	body, ok := p.Hooks[name]
	if !ok || strings.TrimSpace(body) == "" {
		return nil
	}

	return hooks.Run(ctx, hooks.Script{
		Name: name,
		Body: body,
		Dir:  p.Root,
		Env:  p.HookEnv(),
	})
}
