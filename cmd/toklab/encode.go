package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/example/toklab/internal/config"
	textpkg "github.com/example/toklab/internal/text"
	"github.com/example/toklab/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	var inputText string
	var format string
	var showTrace bool

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode text into token ids",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			selectedFormat, err := config.NormalizeFormat(format)
			if err != nil {
				return err
			}

			input, err := readEncodeInput(inputText, cfg)
			if err != nil {
				return err
			}

			result := tokenizer.NewDefault().Encode(input)

			if selectedFormat == config.FormatJSON {
				return writeJSONResult(os.Stdout, result)
			}

			fmt.Printf("Tokens: %s\n", joinIDs(result.TokenIDs))
			fmt.Printf("Characters: %d, token ids: %d\n", result.CharCount, result.TokenCount)
			if showTrace {
				for _, step := range result.Trace {
					fmt.Printf("  [%d] %q → %s → %s\n",
						step.Step, step.Unit, step.Process, joinIDs(step.IDs))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputText, "text", "", "Text to encode (if empty, read from stdin)")
	cmd.Flags().StringVar(&format, "format", config.FormatText, "Output format (text|json)")
	cmd.Flags().BoolVar(&showTrace, "trace", false, "Show the per-unit resolution steps")

	return cmd
}

// readEncodeInput gathers and validates text input shared by encode and
// stats: flag or stdin, normalized line endings, size-limited.
func readEncodeInput(flagValue string, cfg config.Config) (string, error) {
	raw, err := readInput(flagValue, os.Stdin)
	if err != nil {
		return "", err
	}

	input, err := textpkg.Normalize(raw)
	if err != nil {
		return "", err
	}

	if cfg.Server.MaxTextBytes > 0 && len(input) > cfg.Server.MaxTextBytes {
		return "", fmt.Errorf("input exceeds maximum size of %d bytes", cfg.Server.MaxTextBytes)
	}

	return input, nil
}

func writeJSONResult(w *os.File, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
