package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// version is the current imgenv release.
const version = "0.1.0"

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		RunE:  commandAction(versionHandler),
	}
	adjustUsage(cmd)
	return cmd
}

func versionHandler(args []string, stdout io.Writer) error {
	_, err := fmt.Fprintf(stdout, "imgenv version %s", version)
	if err != nil {
		return err
	}
	if gitCommit != "" {
		_, err = fmt.Fprintf(stdout, " commit: %s", gitCommit)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(stdout)
	return err
}
