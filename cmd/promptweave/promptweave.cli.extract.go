package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/promptweave/go-promptweave"
)

func newExtractCmd() *cobra.Command {
	var tagNames []string
	var outputPath string

	cmd := &cobra.Command{
		Use:   CmdNameExtract + " [file]",
		Short: "Extract tagged sections from model output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(tagNames) == 0 {
				return errors.New(ErrMsgNoTags)
			}

			content, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			sections := promptweave.ParseStructuredContent(content, tagNames)

			data, err := yaml.Marshal(sections)
			if err != nil {
				return fmt.Errorf("%s: %w", ErrMsgEncodeFailed, err)
			}

			return writeOutput(outputPath, data, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringSliceVarP(&tagNames, FlagTags, "t", nil, "Tag names to extract (comma separated, repeatable)")
	cmd.Flags().StringVarP(&outputPath, FlagOutput, "o", FlagDefaultOutput, "Output file (default stdout)")

	return cmd
}
