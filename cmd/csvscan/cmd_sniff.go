package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fieldstream/stream-csv/pkg/csv"
)

// sniffSampleSize bounds how much of the input is read for detection.
const sniffSampleSize = 64 * 1024

func newSniffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sniff [file]",
		Short: "Guess the field delimiter of a CSV file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeIn()

			sample, err := io.ReadAll(io.LimitReader(in, sniffSampleSize))
			if err != nil {
				return err
			}

			opts := csv.NewSniffer(sample).Detect()
			fmt.Fprintf(cmd.OutOrStdout(), "delimiter: %s\n", dialectByteName(opts.Delimiter))
			return nil
		},
	}

	return cmd
}
