package genai

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the Client interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	SearchNewsFunc     func(ctx context.Context, prompt string) (NewsResult, error)
	FindPlacesFunc     func(ctx context.Context, prompt string, latitude, longitude float64) (MapResult, error)
	GenerateFanArtFunc func(ctx context.Context, prompt string, ratio AspectRatio) (ImageResult, error)
	AnalyzePhotoFunc   func(ctx context.Context, prompt string, image []byte, mimeType string) (AnalysisResult, error)

	// Call records
	SearchNewsCalls     []string
	FindPlacesCalls     []string
	GenerateFanArtCalls []struct {
		Prompt string
		Ratio  AspectRatio
	}
	AnalyzePhotoCalls []struct {
		Prompt   string
		MIMEType string
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockClient {
	return &MockClient{}
}

func (m *MockClient) SearchNews(ctx context.Context, prompt string) (NewsResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SearchNewsCalls = append(m.SearchNewsCalls, prompt)
	if m.SearchNewsFunc != nil {
		return m.SearchNewsFunc(ctx, prompt)
	}
	return NewsResult{}, nil
}

func (m *MockClient) FindPlaces(ctx context.Context, prompt string, latitude, longitude float64) (MapResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FindPlacesCalls = append(m.FindPlacesCalls, prompt)
	if m.FindPlacesFunc != nil {
		return m.FindPlacesFunc(ctx, prompt, latitude, longitude)
	}
	return MapResult{}, nil
}

func (m *MockClient) GenerateFanArt(ctx context.Context, prompt string, ratio AspectRatio) (ImageResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateFanArtCalls = append(m.GenerateFanArtCalls, struct {
		Prompt string
		Ratio  AspectRatio
	}{prompt, ratio})
	if m.GenerateFanArtFunc != nil {
		return m.GenerateFanArtFunc(ctx, prompt, ratio)
	}
	return ImageResult{}, nil
}

func (m *MockClient) AnalyzePhoto(ctx context.Context, prompt string, image []byte, mimeType string) (AnalysisResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnalyzePhotoCalls = append(m.AnalyzePhotoCalls, struct {
		Prompt   string
		MIMEType string
	}{prompt, mimeType})
	if m.AnalyzePhotoFunc != nil {
		return m.AnalyzePhotoFunc(ctx, prompt, image, mimeType)
	}
	return AnalysisResult{}, nil
}
