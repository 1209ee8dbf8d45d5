package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/bstree/bfs"
	"github.com/katalvlaran/bstree/core"
	"github.com/katalvlaran/bstree/dfs"
)

func newTraverseCommand() *cli.Command {
	return &cli.Command{
		Name:      "traverse",
		Usage:     "print level, pre, in or post-order sequences",
		ArgsUsage: " ",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "order",
				Usage: "level, pre, in, post or all",
				Value: "all",
			},
			&cli.BoolFlag{
				Name:  "iterative",
				Usage: "walk depth-first orders with an explicit stack",
			},
			&cli.IntSliceFlag{
				Name:  "remove",
				Usage: "values to remove before traversing (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print a JSON object instead of text lines",
			},
		}, treeFlags()...),
		Action: runTraverse,
	}
}

// traversalNames lists every supported order in output order.
var traversalNames = []string{"level", "pre", "in", "post"}

func runTraverse(cctx *cli.Context) error {
	logger := configLogger(cctx, cctx.App.ErrWriter)

	t, err := buildFromFlags(cctx, logger)
	if err != nil {
		return err
	}
	for _, v := range cctx.IntSlice("remove") {
		if !t.Remove(v) {
			logger.Warn("value to remove not found", "value", v)
			continue
		}
		logger.Debug("removed value", "value", v, "len", t.Len())
	}

	names := traversalNames
	if o := strings.ToLower(cctx.String("order")); o != "all" {
		names = []string{o}
	}

	results := make(map[string][]int, len(names))
	for _, name := range names {
		seq, err := traverse(t, name, cctx.Bool("iterative"))
		if err != nil {
			return err
		}
		results[name] = seq
	}

	out := cctx.App.Writer
	if cctx.Bool("json") {
		b, err := json.Marshal(results)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
		return nil
	}
	for _, name := range names {
		fmt.Fprintf(out, "%s: %v\n", name, results[name])
	}
	return nil
}

// traverse runs the named traversal over t.
func traverse(t *core.Tree[int], name string, iterative bool) ([]int, error) {
	var order dfs.Order
	switch name {
	case "level":
		res, err := bfs.BFS(t)
		if err != nil {
			return nil, err
		}
		return res.Order, nil
	case "pre":
		order = dfs.Pre
	case "in":
		order = dfs.In
	case "post":
		order = dfs.Post
	default:
		return nil, fmt.Errorf("unknown order %q (want level, pre, in, post or all)", name)
	}

	var opts []dfs.Option[int]
	if iterative {
		opts = append(opts, dfs.WithIterative[int]())
	}
	res, err := dfs.DFS(t, order, opts...)
	if err != nil {
		return nil, err
	}
	return res.Order, nil
}
