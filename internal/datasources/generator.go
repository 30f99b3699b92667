package datasources

import "context"

// GenerationOptions tunes a single text generation call.
type GenerationOptions struct {
	Temperature     float32
	MaxOutputTokens int32
}

// TextGenerator produces free-form text from a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
}

// NullTextGenerator is a null implementation of TextGenerator.
type NullTextGenerator struct{}

var _ TextGenerator = NullTextGenerator{}

func (NullTextGenerator) GenerateText(_ context.Context, _ string, _ GenerationOptions) (string, error) {
	return "", nil
}
