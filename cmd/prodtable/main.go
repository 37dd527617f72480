package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/JonMunkholm/prodtable/internal/config"
	"github.com/JonMunkholm/prodtable/internal/core"
	"github.com/JonMunkholm/prodtable/internal/logging"
	"github.com/JonMunkholm/prodtable/internal/resources"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists; variables already set take precedence
	dotenvErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr; stdout carries only the table
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	ctx := logging.WithRunID(context.Background(), uuid.NewString())

	logging.FromContext(ctx).Debug("configuration loaded",
		"config", cfg.String(),
		"dotenv", dotenvErr == nil,
	)

	os.Exit(run(ctx, cfg, os.Stdout, os.Stderr))
}

// run executes one pipeline and returns the process exit status. On failure
// stdout is left untouched and a coded message goes to stderr.
func run(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) int {
	if err := buildPipeline(cfg, stdout).Run(ctx); err != nil {
		uerr := core.NewUserError(err)
		logging.FromContext(ctx).Error("run failed", "code", uerr.User.Code, "error", uerr.Technical)
		fmt.Fprintln(stderr, core.FormatUserError(err))
		return 1
	}
	return 0
}

// buildPipeline wires reader, parser and renderer from cfg.
func buildPipeline(cfg *config.Config, out io.Writer) *core.Pipeline {
	var fsys fs.FS = resources.FS
	if !cfg.Source.Bundled() {
		fsys = os.DirFS(cfg.Source.Dir)
	}

	reader := core.NewResourceReader(fsys, cfg.Source.Name, cfg.Source.MaxSize)
	parser := core.NewCSVParser(cfg.Parse.SkipTrailingBlank)
	provider := core.NewProductProvider(reader, parser)

	return core.NewPipeline(provider, core.NewTableRenderer(out))
}
