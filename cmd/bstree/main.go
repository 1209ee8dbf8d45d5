package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return newApp(os.Stdout, os.Stderr).Run(args)
}

// newApp wires the command tree. Results go to out, logs to errOut.
func newApp(out, errOut io.Writer) *cli.App {
	app := &cli.App{
		Name:      "bstree",
		Usage:     "build binary search trees and print their traversals",
		Version:   versioninfo.Short(),
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity: error, warn, info, debug",
				Value:   "warn",
				EnvVars: []string{"BSTREE_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
	}
	app.Commands = []*cli.Command{
		newTraverseCommand(),
		newLookupCommand(),
		newPrintCommand(),
	}
	return app
}
