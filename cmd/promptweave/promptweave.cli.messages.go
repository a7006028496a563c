package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/promptweave/go-promptweave"
)

func newMessagesCmd(loggerFn func() *zap.Logger) *cobra.Command {
	var varFlags []string
	var varsFile string
	var outputPath string
	var format string

	cmd := &cobra.Command{
		Use:   CmdNameMessages + " [file]",
		Short: "Render a template and split the output into role messages",
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

			messages := promptweave.ParseRoleTags(result)

			encoded, err := encodeMessages(messages, format)
			if err != nil {
				return err
			}

			return writeOutput(outputPath, encoded, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringArrayVar(&varFlags, FlagVar, nil, "Set a variable as key=value (repeatable)")
	cmd.Flags().StringVar(&varsFile, FlagVarsFile, "", "Read variables from a YAML file")
	cmd.Flags().StringVarP(&outputPath, FlagOutput, "o", FlagDefaultOutput, "Output file (default stdout)")
	cmd.Flags().StringVarP(&format, FlagFormat, "f", FlagDefaultFormat, "Output format: yaml or json")

	return cmd
}

func encodeMessages(messages []promptweave.RoleMessage, format string) ([]byte, error) {
	switch format {
	case OutputFormatYAML:
		data, err := yaml.Marshal(messages)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgEncodeFailed, err)
		}
		return data, nil
	case OutputFormatJSON:
		data, err := json.MarshalIndent(messages, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgEncodeFailed, err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgInvalidFormat, format)
	}
}
