package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/promptweave/go-promptweave"
)

func newRenderCmd(loggerFn func() *zap.Logger) *cobra.Command {
	var varFlags []string
	var varsFile string
	var outputPath string

	cmd := &cobra.Command{
		Use:   CmdNameRender + " [file]",
		Short: "Render a template or document with variables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			vars, err := loadVars(varsFile, varFlags)
			if err != nil {
				return err
			}

			result, err := renderSource(loggerFn(), source, vars)
			if err != nil {
				return err
			}

			return writeOutput(outputPath, []byte(result), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringArrayVar(&varFlags, FlagVar, nil, "Set a variable as key=value (repeatable)")
	cmd.Flags().StringVar(&varsFile, FlagVarsFile, "", "Read variables from a YAML file")
	cmd.Flags().StringVarP(&outputPath, FlagOutput, "o", FlagDefaultOutput, "Output file (default stdout)")

	return cmd
}

// renderSource renders plain templates directly and routes sources
// with YAML frontmatter through document parsing.
func renderSource(logger *zap.Logger, source string, vars map[string]any) (string, error) {
	engine := promptweave.New(promptweave.WithLogger(logger))

	if strings.HasPrefix(source, promptweave.YAMLFrontmatterDelimiter) {
		result, err := engine.RenderDocument(source, vars)
		if err != nil {
			return "", fmt.Errorf("%s: %w", ErrMsgRenderFailed, err)
		}
		return result, nil
	}

	result, err := engine.Render(source, vars)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgRenderFailed, err)
	}
	return result, nil
}
