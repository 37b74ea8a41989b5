// Package main provides the command-line interface for issue-state.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lerenn/issue-state/cmd/issue-state/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "issue-state [flags] URL...",
		Short: "Show the state of issues, pull requests and bug reports",
		Long: `Resolve issue, pull request and bug report URLs from GitHub, GitLab,
Codeberg and Bugzilla instances into their title and state
(open, closed, merged or draft).

Tokens are read from the environment (GITHUB_TOKEN, GITLAB_TOKEN,
CODEBERG_TOKEN, ...), then from the configuration file, then from the
system keyring when enabled.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.Flags().StringVarP(&cli.Output, "output", "o", cli.OutputText, "Output format (text, json, yaml)")

	rootCmd.AddCommand(createInitCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, cli.ErrResolutionFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
