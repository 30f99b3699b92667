package app

import (
	"context"
	"fmt"

	"github.com/caseprep/casewise/internal/command"
	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/datasources/gemini"
	"github.com/caseprep/casewise/internal/datasources/memcache"
	"github.com/caseprep/casewise/internal/datasources/mysql"
	"github.com/caseprep/casewise/internal/datasources/pinecone"
	"github.com/caseprep/casewise/internal/datasources/voyageai"
	"github.com/caseprep/casewise/internal/domain"
	"github.com/caseprep/casewise/internal/transport/web/router"
	"github.com/caseprep/casewise/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	store, err := SetupStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up store: %w", err)
	}

	vectorIndex, err := SetupVectorIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up vector index: %w", err)
	}

	geminiClient := SharedGeminiClient()

	embedder, err := SetupEmbedder(ctx, geminiClient)
	if err != nil {
		return nil, fmt.Errorf("setting up embedder: %w", err)
	}

	generator, err := setupGenerator(ctx, geminiClient)
	if err != nil {
		return nil, fmt.Errorf("setting up text generator: %w", err)
	}

	authMiddleware, err := router.SetupAuth0Middleware(
		MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
		MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
	)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	adminPolicy := domain.NewAdminEmailSet(MustGetEnvAsStrings(ctx, "ADMIN_EMAILS"))
	quotaTracker := command.NewQuotaTracker(store, adminPolicy)

	generateFeedbackCmd := command.NewGenerateFeedback(store, generator, quotaTracker)
	findSimilarCmd := command.NewFindSimilarCases(embedder, vectorIndex, memcache.New(), store)
	indexCaseCmd := command.NewIndexCase(store, embedder, vectorIndex)
	indexAllCmd := command.NewIndexAllCases(store, indexCaseCmd)

	httpRouter, err := router.MakeRouter(
		store,
		store,
		findSimilarCmd,
		generateFeedbackCmd,
		indexAllCmd,
		quotaTracker,
		adminPolicy,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "CASES_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func SetupStore(ctx context.Context) (*mysql.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func SetupVectorIndex(ctx context.Context) (datasources.VectorIndexRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "SIMILARITY_DRIVER"); driver {
	case "null":
		return datasources.NullVectorIndex{}, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown similarity driver [%s]", driver)
	}
}

// SharedGeminiClient returns a constructor that builds the Gemini client on
// first use and hands the same instance to every later caller, so wiring
// both generation and embeddings to Gemini shares one client.
func SharedGeminiClient() func(ctx context.Context) (*gemini.Client, error) {
	var client *gemini.Client
	return func(ctx context.Context) (*gemini.Client, error) {
		if client != nil {
			return client, nil
		}

		c, err := gemini.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "GEMINI_API_KEY"),
			MustGetEnvAsString(ctx, "GEMINI_TEXT_MODEL"),
			MustGetEnvAsString(ctx, "GEMINI_EMBED_MODEL"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to gemini: %w", err)
		}

		client = c
		return client, nil
	}
}

func SetupEmbedder(
	ctx context.Context,
	geminiClient func(ctx context.Context) (*gemini.Client, error),
) (datasources.Embedder, error) {
	switch driver := MustGetEnvAsString(ctx, "EMBEDDINGS_DRIVER"); driver {
	case "null":
		return datasources.NullEmbedder{}, nil
	case "gemini":
		client, err := geminiClient(ctx)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "voyageai":
		return voyageai.NewClient(
			MustGetEnvAsString(ctx, "VOYAGEAI_API_KEY"),
			MustGetEnvAsString(ctx, "VOYAGEAI_MODEL"),
		), nil
	default:
		return nil, fmt.Errorf("unknown embeddings driver [%s]", driver)
	}
}

func setupGenerator(
	ctx context.Context,
	geminiClient func(ctx context.Context) (*gemini.Client, error),
) (datasources.TextGenerator, error) {
	switch driver := MustGetEnvAsString(ctx, "GENERATION_DRIVER"); driver {
	case "null":
		return datasources.NullTextGenerator{}, nil
	case "gemini":
		client, err := geminiClient(ctx)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown generation driver [%s]", driver)
	}
}
