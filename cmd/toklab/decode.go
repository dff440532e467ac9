package main

import (
	"fmt"
	"os"

	"github.com/example/toklab/internal/config"
	textpkg "github.com/example/toklab/internal/text"
	"github.com/example/toklab/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	var tokenList string
	var format string
	var showTrace bool

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a comma-separated token id list back into text",
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := requireConfig(); err != nil {
				return err
			}

			selectedFormat, err := config.NormalizeFormat(format)
			if err != nil {
				return err
			}

			raw, err := readInput(tokenList, os.Stdin)
			if err != nil {
				return err
			}

			// Invalid items are rejected here; the engine only ever sees
			// well-formed integers.
			ids, err := textpkg.ParseTokenIDs(raw)
			if err != nil {
				return err
			}

			result := tokenizer.NewDefault().Decode(ids)

			if selectedFormat == config.FormatJSON {
				return writeJSONResult(os.Stdout, result)
			}

			fmt.Printf("Text: %s\n", result.Text)
			if showTrace {
				for _, step := range result.Trace {
					fmt.Printf("  [%d] %d → %s → %q\n",
						step.Step, step.ID, step.Process, step.Text)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenList, "tokens", "", "Comma-separated token ids (if empty, read from stdin)")
	cmd.Flags().StringVar(&format, "format", config.FormatText, "Output format (text|json)")
	cmd.Flags().BoolVar(&showTrace, "trace", false, "Show the per-token resolution steps")

	return cmd
}
