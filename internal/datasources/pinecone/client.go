package pinecone

import (
	"context"
	"fmt"

	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/domain"
)

const namespace = "cases"

var _ datasources.VectorIndexRepository = (*Client)(nil)

type Client struct {
	pinecone *pinecone.Client
	index    *pinecone.Index
}

func NewClient(ctx context.Context, apiKey, indexName string) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone: pc,
		index:    idx,
	}, nil
}

func (c *Client) connect() (*pinecone.IndexConnection, error) {
	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	return idxConn, nil
}

func (c *Client) UpsertCaseVector(ctx context.Context, cs domain.Case, vector []float32) error {
	idxConn, err := c.connect()
	if err != nil {
		return err
	}
	defer func() { _ = idxConn.Close() }()

	metadata, err := structpb.NewStruct(map[string]any{
		"title":               cs.Title,
		"description_snippet": domain.DescriptionSnippet(cs.Description),
		"category":            cs.Category,
		"difficulty":          cs.Difficulty,
		"total_answers":       float64(cs.TotalAnswers),
		"avg_upvotes":         cs.AvgUpvotes,
	})
	if err != nil {
		return fmt.Errorf("creating metadata for case [%s]: %w", cs.CaseID, err)
	}

	_, err = idxConn.UpsertVectors(ctx, []*pinecone.Vector{
		{
			Id:       cs.CaseID,
			Values:   vector,
			Metadata: metadata,
		},
	})
	if err != nil {
		return fmt.Errorf("upserting vector for case [%s]: %w", cs.CaseID, err)
	}

	return nil
}

func (c *Client) QuerySimilarCases(
	ctx context.Context,
	vector []float32,
	topK int,
) ([]domain.SimilarCase, error) {
	if topK > 1000 {
		return nil, fmt.Errorf("topK value too high [%d]", topK)
	}

	idxConn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer func() { _ = idxConn.Close() }()

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(topK),
		IncludeValues:   false,
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, fmt.Errorf("querying for similar case vectors: %w", err)
	}

	results := make([]domain.SimilarCase, 0, len(resp.Matches))
	for _, scored := range resp.Matches {
		results = append(results, domain.SimilarCase{
			CaseID:             scored.Vector.Id,
			Title:              metadataString(scored.Vector.Metadata, "title"),
			DescriptionSnippet: metadataString(scored.Vector.Metadata, "description_snippet"),
			Category:           metadataString(scored.Vector.Metadata, "category"),
			Difficulty:         metadataString(scored.Vector.Metadata, "difficulty"),
			Score:              float64(scored.Score),
			TotalAnswers:       int(metadataNumber(scored.Vector.Metadata, "total_answers")),
			AvgUpvotes:         metadataNumber(scored.Vector.Metadata, "avg_upvotes"),
		})
	}

	return results, nil
}

func metadataString(metadata *pinecone.Metadata, key string) string {
	if metadata == nil {
		return ""
	}
	value, ok := metadata.Fields[key]
	if !ok {
		return ""
	}
	return value.GetStringValue()
}

func metadataNumber(metadata *pinecone.Metadata, key string) float64 {
	if metadata == nil {
		return 0
	}
	value, ok := metadata.Fields[key]
	if !ok {
		return 0
	}
	return value.GetNumberValue()
}
