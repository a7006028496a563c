// Command promptweave renders prompt templates and post-processes
// model output from the command line.
//
// Usage:
//
//	promptweave <command> [flags] [file]
//
// Commands:
//
//	render    Render a template or document with variables
//	messages  Render and split output into role messages
//	extract   Extract tagged sections from model output
//	lint      Report suspicious template constructs
//	version   Print version information
//
// Every command reads from the file argument, or from stdin when the
// argument is omitted or "-".
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set via ldflags at build time.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(ExitCodeError)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "promptweave",
		Short:         "Prompt template rendering and output extraction",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, FlagVerbose, false, "Enable verbose logging")

	loggerFn := func() *zap.Logger {
		if !verbose {
			return zap.NewNop()
		}
		logger, err := zap.NewDevelopment()
		if err != nil {
			return zap.NewNop()
		}
		return logger
	}

	rootCmd.AddCommand(
		newRenderCmd(loggerFn),
		newMessagesCmd(loggerFn),
		newExtractCmd(),
		newLintCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
