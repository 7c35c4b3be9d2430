package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/containers/imgenv/pkg/envout"
	"github.com/spf13/pflag"
)

type extractOptions struct {
	global  *globalOptions
	workdir bool
}

func extractFlags(opts *extractOptions) *pflag.FlagSet {
	fs := pflag.FlagSet{}
	fs.BoolVar(&opts.workdir, "workdir", false, "print the image's working directory instead of its environment")
	return &fs
}

func (opts *extractOptions) run(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.New("Usage: imgenv [command options] IMAGE-NAME")
	}
	imageName := args[0]
	ctx, cancel := opts.global.commandTimeoutContext()
	defer cancel()

	inspector := envout.Inspector{Tool: opts.global.inspector}
	raw, err := inspector.Inspect(ctx, imageName)
	if err != nil {
		return err
	}
	config, err := envout.Decode(raw)
	if err != nil {
		return err
	}
	if opts.workdir {
		_, err := fmt.Fprint(stdout, config.WorkingDir())
		return err
	}
	env, err := config.Env()
	if err != nil {
		return err
	}
	formatted, err := envout.FormatEnv(env)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(stdout, formatted)
	return err
}
