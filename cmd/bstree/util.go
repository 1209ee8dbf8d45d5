package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/bstree/builder"
	"github.com/katalvlaran/bstree/core"
)

// treeFlags returns the flags that select the values a command builds its
// tree from.
func treeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "values",
			Usage:   "comma-separated integers, inserted in the given order",
			EnvVars: []string{"BSTREE_VALUES"},
		},
		&cli.StringFlag{
			Name:    "shape",
			Usage:   "generated insertion order: ascending, descending, balanced or random",
			EnvVars: []string{"BSTREE_SHAPE"},
		},
		&cli.IntFlag{
			Name:  "size",
			Usage: "number of generated values for --shape",
			Value: 15,
		},
		&cli.IntFlag{
			Name:  "start",
			Usage: "first value for ascending, descending and balanced shapes",
			Value: 1,
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed for --shape random",
			Value:   1,
			EnvVars: []string{"BSTREE_SEED"},
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "exclusive upper bound of values drawn by --shape random",
			Value: 100,
		},
	}
}

var errNoSource = errors.New("one of --values or --shape is required")

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// parseValues turns "9, 4,6" into []int{9, 4, 6}.
func parseValues(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", field, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// buildFromFlags builds the tree described by treeFlags. Explicit --values
// are inserted first, then the generated --shape.
func buildFromFlags(cctx *cli.Context, logger *slog.Logger) (*core.Tree[int], error) {
	var cons []builder.Constructor

	if s := cctx.String("values"); s != "" {
		vals, err := parseValues(s)
		if err != nil {
			return nil, err
		}
		cons = append(cons, builder.Values(vals...))
	}

	size := cctx.Int("size")
	switch shape := strings.ToLower(cctx.String("shape")); shape {
	case "":
	case "ascending":
		cons = append(cons, builder.Ascending(size))
	case "descending":
		cons = append(cons, builder.Descending(size))
	case "balanced":
		cons = append(cons, builder.Balanced(size))
	case "random":
		cons = append(cons, builder.Random(size, cctx.Int("limit")))
	default:
		return nil, fmt.Errorf("unknown shape %q", shape)
	}

	if len(cons) == 0 {
		return nil, errNoSource
	}

	opts := []builder.BuilderOption{
		builder.WithSeed(cctx.Int64("seed")),
		builder.WithStart(cctx.Int("start")),
	}
	t, err := builder.BuildTree(opts, cons...)
	if err != nil {
		return nil, err
	}
	logger.Debug("built tree", "len", t.Len(), "height", t.Height())
	return t, nil
}
