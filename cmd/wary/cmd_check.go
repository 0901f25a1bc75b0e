package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/wary"
	"github.com/dhamidi/wary/json"
)

func newCheckCmd() *cobra.Command {
	var quiet bool
	var noContext bool

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a JSON file and report diagnostics for any failure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("wary.check")

			data, err := readInputFile(args[0])
			if err != nil {
				return err
			}
			log.Debugf("read %d bytes from %s", len(data), args[0])

			var reportOpts []wary.ReportOption
			if noContext {
				reportOpts = append(reportOpts, wary.WithoutBacktrace())
			}

			in, err := wary.TextBytes(data)
			if err != nil {
				// Render the encoding failure against a byte view so
				// the report can still show an offset.
				_ = wary.WriteReport(os.Stderr, err, wary.Bytes(data), reportOpts...)
				return fmt.Errorf("check %s: %w", args[0], err)
			}

			v, err := json.Parse(in)
			if err != nil {
				_ = wary.WriteReport(os.Stderr, err, in, reportOpts...)
				if e, ok := wary.AsError(err); ok && !e.IsFatal() {
					log.Infof("input is incomplete: %s", e.Retry())
				}
				return fmt.Errorf("check %s: %w", args[0], err)
			}

			if !quiet {
				fmt.Printf("%s: ok (%s)\n", args[0], v.Kind)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress success output")
	cmd.Flags().BoolVar(&noContext, "no-context", false, "omit the context backtrace from diagnostics")

	return cmd
}
