package genai

import (
	"context"
	"errors"
)

// ErrGenerationFailed is returned for any collaborator failure: network,
// non-2xx status or an empty response. Callers surface it as a single
// "generation failed" condition; there is no retry.
var ErrGenerationFailed = errors.New("generation failed")

// Client defines the interface for the generative-AI collaborator.
// This allows for mock implementations to be used in tests.
type Client interface {
	SearchNews(ctx context.Context, prompt string) (NewsResult, error)
	FindPlaces(ctx context.Context, prompt string, latitude, longitude float64) (MapResult, error)
	GenerateFanArt(ctx context.Context, prompt string, ratio AspectRatio) (ImageResult, error)
	AnalyzePhoto(ctx context.Context, prompt string, image []byte, mimeType string) (AnalysisResult, error)
}
