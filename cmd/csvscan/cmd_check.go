package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fieldstream/stream-csv/pkg/csv"
)

func newCheckCmd() *cobra.Command {
	var dialect dialectFlags

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate CSV quoting and report the exact failure offset",
		Long: `Validate a CSV file (or stdin) in strict mode. On malformed quoting the
error kind and the byte offset of the first bad byte are reported and the
exit status is 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := dialect.options(cmd)
			if err != nil {
				return err
			}
			opts.Strict = true

			in, closeIn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeIn()

			var rows, fields int64
			parser, err := csv.NewParser(opts, csv.SinkFuncs{
				OnField: func(b []byte, null bool) { fields++ },
				OnRow:   func() { rows++ },
			})
			if err != nil {
				return err
			}

			buf := make([]byte, 32*1024)
			for {
				n, rerr := in.Read(buf)
				if n > 0 {
					if _, perr := parser.Parse(buf[:n]); perr != nil {
						return perr
					}
				}
				if rerr == io.EOF {
					break
				}
				if rerr != nil {
					return rerr
				}
			}
			if err := parser.Finish(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString(
				"ok: %d rows, %d fields, %d bytes", rows, fields, parser.Consumed()))
			return nil
		},
	}

	dialect.register(cmd)

	return cmd
}
