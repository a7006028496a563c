package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// readInput reads content from the first positional argument, or from
// stdin when no argument (or "-") is given.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || args[0] == InputSourceStdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%s: %w", ErrMsgReadInputFailed, err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgReadInputFailed, err)
	}
	return string(data), nil
}

// writeOutput writes content to a file, or to stdout for "-".
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, OutputFilePermissions); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteOutputFailed, err)
	}
	return nil
}

// loadVars builds the variable map from a YAML file and repeated
// --var key=value flags. Flag values take precedence over the file.
func loadVars(varsFile string, varFlags []string) (map[string]any, error) {
	vars := make(map[string]any)

	if varsFile != "" {
		data, err := os.ReadFile(varsFile)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgReadVarsFailed, err)
		}
		if err := yaml.Unmarshal(data, &vars); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgParseVarsFailed, err)
		}
	}

	for _, kv := range varFlags {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%s: %q", ErrMsgInvalidVarFlag, kv)
		}
		vars[key] = value
	}

	return vars, nil
}
