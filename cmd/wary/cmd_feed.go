package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/wary"
	"github.com/dhamidi/wary/json"
)

func newFeedCmd() *cobra.Command {
	var chunk int

	cmd := &cobra.Command{
		Use:   "feed <file>",
		Short: "Replay a JSON file in chunks to show incremental retry decisions",
		Long: `Feed simulates a streaming caller: it reveals the file to the parser
a chunk at a time, re-running the parse from the start after each
round, and prints the retry requirement the parser reported until the
input either completes or turns out to be invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("wary.feed")

			data, err := readInputFile(args[0])
			if err != nil {
				return err
			}
			if chunk < 1 {
				return fmt.Errorf("chunk size must be at least 1")
			}

			have := 0
			round := 0
			for {
				round++
				have = min(have+chunk, len(data))
				in, err := wary.TextBytes(data[:have])
				if err != nil {
					// A split multi-byte sequence at the chunk edge
					// is not invalid data, just an unlucky cut.
					if have < len(data) {
						log.Debugf("round %d: chunk edge splits utf-8 sequence, feeding more", round)
						continue
					}
					_ = wary.WriteReport(os.Stderr, err, wary.Bytes(data[:have]))
					return fmt.Errorf("feed %s: %w", args[0], err)
				}

				_, perr := json.Parse(in)
				if perr == nil {
					fmt.Printf("round %d: complete after %d of %d bytes\n", round, have, len(data))
					return nil
				}
				e, ok := wary.AsError(perr)
				if !ok || e.IsFatal() {
					_ = wary.WriteReport(os.Stderr, perr, in)
					return fmt.Errorf("feed %s: %w", args[0], perr)
				}
				fmt.Printf("round %d: %d bytes fed, %s\n", round, have, e.Retry())
				if have == len(data) {
					fmt.Println("input exhausted while still incomplete")
					return fmt.Errorf("feed %s: %w", args[0], perr)
				}
			}
		},
	}
	cmd.Flags().IntVarP(&chunk, "chunk", "c", 16, "bytes revealed per round")

	return cmd
}
