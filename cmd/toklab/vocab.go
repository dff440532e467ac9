package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/example/toklab/internal/config"
	"github.com/example/toklab/internal/vocab"
	"github.com/spf13/cobra"
)

func newVocabCmd() *cobra.Command {
	var search string
	var includeASCII bool
	var format string

	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "List vocabulary entries",
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := requireConfig(); err != nil {
				return err
			}

			selectedFormat, err := config.NormalizeFormat(format)
			if err != nil {
				return err
			}

			entries := vocab.Default().List(search, includeASCII)

			if selectedFormat == config.FormatJSON {
				return writeJSONResult(os.Stdout, entries)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tKIND\tUNIT")
			for _, e := range entries {
				fmt.Fprintf(w, "%d\t%s\t%q\n", e.ID, e.Kind, e.Unit)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Printf("%d entries\n", len(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter entries by substring")
	cmd.Flags().BoolVar(&includeASCII, "ascii", false, "Include the printable ASCII fallback range")
	cmd.Flags().StringVar(&format, "format", config.FormatText, "Output format (text|json)")

	return cmd
}
