package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caseprep/casewise/internal/domain"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func setGeminiEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_TEXT_MODEL", "gemini-2.0-flash")
	t.Setenv("GEMINI_EMBED_MODEL", "text-embedding-004")
}

func TestSharedGeminiClient_BuildsOnceAndReuses(t *testing.T) {
	setGeminiEnv(t)
	ctx := testContext()

	geminiClient := SharedGeminiClient()

	first, err := geminiClient(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := geminiClient(ctx)
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestSetupEmbedderAndGeneratorShareGeminiClient(t *testing.T) {
	setGeminiEnv(t)
	t.Setenv("EMBEDDINGS_DRIVER", "gemini")
	t.Setenv("GENERATION_DRIVER", "gemini")
	ctx := testContext()

	geminiClient := SharedGeminiClient()

	embedder, err := SetupEmbedder(ctx, geminiClient)
	require.NoError(t, err)

	generator, err := setupGenerator(ctx, geminiClient)
	require.NoError(t, err)

	require.Same(t, embedder, generator)
}

func TestSetupEmbedder_UnknownDriver(t *testing.T) {
	setGeminiEnv(t)
	t.Setenv("EMBEDDINGS_DRIVER", "carrier-pigeon")

	_, err := SetupEmbedder(testContext(), SharedGeminiClient())
	require.ErrorContains(t, err, "unknown embeddings driver")
}
