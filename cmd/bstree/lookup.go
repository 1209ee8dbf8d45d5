package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"
)

func newLookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "report whether each value is present",
		ArgsUsage: "<value>...",
		Flags:     treeFlags(),
		Action: func(cctx *cli.Context) error {
			logger := configLogger(cctx, cctx.App.ErrWriter)
			if cctx.NArg() == 0 {
				return fmt.Errorf("at least one value to look up is required")
			}

			t, err := buildFromFlags(cctx, logger)
			if err != nil {
				return err
			}
			for _, arg := range cctx.Args().Slice() {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", arg, err)
				}
				if _, ok := t.Lookup(v); ok {
					fmt.Fprintf(cctx.App.Writer, "%d: found\n", v)
				} else {
					fmt.Fprintf(cctx.App.Writer, "%d: not found\n", v)
				}
			}
			return nil
		},
	}
}
