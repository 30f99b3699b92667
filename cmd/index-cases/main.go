package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/caseprep/casewise/internal/app"
	"github.com/caseprep/casewise/internal/command"
	"github.com/caseprep/casewise/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

// Bulk-indexes the whole case library into the vector index. Run after
// loading new cases, or after changing the embedding model.
func main() {
	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "case indexing failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "case indexing completed successfully")
}

func run(ctx context.Context) error {
	store, err := app.SetupStore(ctx)
	if err != nil {
		return fmt.Errorf("setting up store: %w", err)
	}

	vectorIndex, err := app.SetupVectorIndex(ctx)
	if err != nil {
		return fmt.Errorf("setting up vector index: %w", err)
	}

	embedder, err := app.SetupEmbedder(ctx, app.SharedGeminiClient())
	if err != nil {
		return fmt.Errorf("setting up embedder: %w", err)
	}

	indexCaseCmd := command.NewIndexCase(store, embedder, vectorIndex)
	indexAllCmd := command.NewIndexAllCases(store, indexCaseCmd)

	resp, err := indexAllCmd.Execute(ctx, command.IndexAllCasesRequest{})
	if err != nil {
		return err
	}

	if resp.FailCount > 0 {
		return fmt.Errorf("indexing finished with %d failures out of %d cases", resp.FailCount, resp.Total)
	}

	return nil
}
