package main

import (
	"fmt"
	"os"

	"github.com/example/toklab/internal/config"
	"github.com/example/toklab/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var inputText string
	var format string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show tokenization statistics for text",
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

			stats := tokenizer.NewDefault().Stats(input)

			if selectedFormat == config.FormatJSON {
				return writeJSONResult(os.Stdout, stats)
			}

			fmt.Printf("Characters:  %d\n", stats.CharCount)
			fmt.Printf("Tokens:      %d\n", stats.TokenCount)
			fmt.Printf("Compression: %.1f%%\n", stats.CompressionRatioPercent)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputText, "text", "", "Text to analyze (if empty, read from stdin)")
	cmd.Flags().StringVar(&format, "format", config.FormatText, "Output format (text|json)")

	return cmd
}
