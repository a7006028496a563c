package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptweave/go-promptweave"
)

func newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   CmdNameLint + " [file]",
		Short: "Report suspicious template constructs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			name := InputSourceStdin
			if len(args) > 0 {
				name = args[0]
			}

			issues := promptweave.Lint(source)
			for _, issue := range issues {
				fmt.Fprintf(cmd.OutOrStdout(), FmtLintIssue,
					name, issue.Line, issue.Column, issue.Severity, issue.Message)
			}

			if len(issues) > 0 {
				os.Exit(ExitCodeLintIssue)
			}
			return nil
		},
	}

	return cmd
}
