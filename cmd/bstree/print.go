package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/bstree/render"
)

func newPrintCommand() *cli.Command {
	return &cli.Command{
		Name:  "print",
		Usage: "draw the tree",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "validate",
				Usage: "check ordering and ownership invariants before drawing",
				Value: true,
			},
		}, treeFlags()...),
		Action: func(cctx *cli.Context) error {
			logger := configLogger(cctx, cctx.App.ErrWriter)

			t, err := buildFromFlags(cctx, logger)
			if err != nil {
				return err
			}
			if cctx.Bool("validate") {
				if err := t.Validate(); err != nil {
					return err
				}
			}
			fmt.Fprint(cctx.App.Writer, render.Render(t))
			fmt.Fprintf(cctx.App.Writer, "len=%d height=%d\n", t.Len(), t.Height())
			return nil
		},
	}
}
