package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/wary/scan"
)

func newScanCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "scan <file> <needle>",
		Short: "Find occurrences of a byte sequence in a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInputFile(args[0])
			if err != nil {
				return err
			}
			needle := []byte(args[1])
			if len(needle) == 0 {
				return fmt.Errorf("empty needle")
			}

			found := 0
			base := 0
			for {
				i := scan.Index(data[base:], needle)
				if i < 0 {
					break
				}
				fmt.Printf("%d\n", base+i)
				found++
				if !all {
					break
				}
				base += i + 1
			}
			if found == 0 {
				return fmt.Errorf("%q not found in %s", args[1], args[0])
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "report every occurrence, not just the first")

	return cmd
}
