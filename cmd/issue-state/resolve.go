package main

import (
	"fmt"
	"io"

	"github.com/lerenn/issue-state/cmd/issue-state/internal/cli"
	"github.com/spf13/cobra"
)

func runResolve(cmd *cobra.Command, urls []string) error {
	switch cli.Output {
	case cli.OutputText, cli.OutputJSON, cli.OutputYAML:
	default:
		return fmt.Errorf("%w: %q", cli.ErrUnknownOutput, cli.Output)
	}

	r, err := cli.NewResolver()
	if err != nil {
		return err
	}

	results := r.ResolveMany(cmd.Context(), urls)

	out := cmd.OutOrStdout()
	if cli.Quiet {
		out = io.Discard
	}
	if err := cli.WriteResults(out, cmd.ErrOrStderr(), cli.Output, results); err != nil {
		return err
	}

	for _, result := range results {
		if result.Err != nil {
			return cli.ErrResolutionFailed
		}
	}
	return nil
}
