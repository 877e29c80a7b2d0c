package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldstream/stream-csv/pkg/csv"
)

func newScanCmd() *cobra.Command {
	var dialect dialectFlags
	var maxRows int
	var crlf bool

	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Tokenize a CSV stream and re-emit it in the canonical dialect",
		Long: `Tokenize a CSV file (or stdin) with the given input dialect and write
the records back to stdout as comma-delimited, double-quoted CSV.

Because input and output dialects are independent, scan doubles as a
dialect converter:

  csvscan scan -d ';' legacy.csv > normalized.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := dialect.options(cmd)
			if err != nil {
				return err
			}

			in, closeIn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeIn()

			scanner, err := csv.NewScanner(in, opts)
			if err != nil {
				return err
			}
			out, err := csv.NewWriter(os.Stdout, csv.DefaultOptions())
			if err != nil {
				return err
			}
			out.UseCRLF = crlf

			rows := 0
			for scanner.Scan() {
				if maxRows > 0 && rows >= maxRows {
					break
				}
				if err := out.Write(scanner.Record().Strings()); err != nil {
					return err
				}
				rows++
			}
			if err := scanner.Err(); err != nil {
				return err
			}
			return out.Flush()
		},
	}

	dialect.register(cmd)
	cmd.Flags().IntVar(&maxRows, "max-rows", 0, "stop after this many rows (0 = all)")
	cmd.Flags().BoolVar(&crlf, "crlf", false, "terminate output rows with CRLF")

	return cmd
}
