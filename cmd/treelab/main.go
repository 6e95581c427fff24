// Command treelab walks through the binary search tree and linked list
// exercises: random trees, deletion, hand-built shapes, depth, full nodes,
// symmetry, and a list/stack/queue demo.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "treelab",
		Usage:   "binary search tree and linked list lab",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "warn",
				EnvVars: []string{"TREELAB_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "seed for random values; 0 picks a fresh one",
				EnvVars: []string{"TREELAB_SEED"},
			},
		},
		Before: func(cctx *cli.Context) error {
			_, err := configLogger(cctx, cctx.App.ErrWriter)
			return err
		},
	}
	app.Commands = []*cli.Command{
		cmdRandom,
		cmdDelete,
		cmdManual,
		cmdDepth,
		cmdFull,
		cmdSymmetric,
		cmdList,
		cmdAll,
	}
	return app
}

var errLogLevel = errors.New("unknown log level")

// configLogger installs a text slog handler as the default logger.
// An empty level means warn; anything unrecognised is a usage error.
func configLogger(cctx *cli.Context, writer io.Writer) (*slog.Logger, error) {
	if writer == nil {
		writer = os.Stderr
	}
	var level slog.Level
	switch lvl := strings.ToLower(cctx.String("log-level")); lvl {
	case "error":
		level = slog.LevelError
	case "warn", "":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		return nil, fmt.Errorf("%w %q (want debug, info, warn or error)", errLogLevel, lvl)
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger, nil
}
