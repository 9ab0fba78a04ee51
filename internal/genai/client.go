package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	textModel  = "gemini-2.5-flash"
	imageModel = "imagen-4.0-generate-001"
)

// APIClient is a Generative Language API client that implements the Client
// interface.
type APIClient struct {
	httpClient *http.Client
	apiKey     string
	BaseURL    string
}

// NewClient creates a new client for the Generative Language API.
func NewClient(apiKey string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     apiKey,
		BaseURL:    "https://generativelanguage.googleapis.com",
	}
}

// Ensure APIClient implements the Client interface.
var _ Client = (*APIClient)(nil)

// SearchNews runs a grounded text search about the club and returns the prose
// together with its web citations.
func (c *APIClient) SearchNews(ctx context.Context, prompt string) (NewsResult, error) {
	req := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf("Regarding Flameunter FC, %s", prompt)}}}},
		Tools:    []tool{{GoogleSearch: &struct{}{}}},
	}
	resp, err := c.generateContent(ctx, req)
	if err != nil {
		return NewsResult{}, err
	}
	return NewsResult{
		Text:    firstText(resp),
		Sources: collectSources(resp, func(ch groundingChunk) *chunkSource { return ch.Web }),
	}, nil
}

// FindPlaces runs a grounded place lookup anchored at the caller's position.
func (c *APIClient) FindPlaces(ctx context.Context, prompt string, latitude, longitude float64) (MapResult, error) {
	req := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf("For Flameunter FC, find places related to: %s", prompt)}}}},
		Tools:    []tool{{GoogleMaps: &struct{}{}}},
		ToolConfig: &toolConfig{
			RetrievalConfig: &retrievalConfig{
				LatLng: latLng{Latitude: latitude, Longitude: longitude},
			},
		},
	}
	resp, err := c.generateContent(ctx, req)
	if err != nil {
		return MapResult{}, err
	}
	return MapResult{
		Text:    firstText(resp),
		Sources: collectSources(resp, func(ch groundingChunk) *chunkSource { return ch.Maps }),
	}, nil
}

// GenerateFanArt requests a single JPEG in the given aspect ratio.
func (c *APIClient) GenerateFanArt(ctx context.Context, prompt string, ratio AspectRatio) (ImageResult, error) {
	if !ratio.Valid() {
		return ImageResult{}, fmt.Errorf("unsupported aspect ratio %q: %w", ratio, ErrGenerationFailed)
	}
	req := generateImagesRequest{
		Instances: []imageInstance{{Prompt: fmt.Sprintf("Epic fan art for Flameunter FC: %s", prompt)}},
		Parameters: imageParameters{
			SampleCount:    1,
			AspectRatio:    string(ratio),
			OutputMIMEType: "image/jpeg",
		},
	}

	var resp generateImagesResponse
	if err := c.post(ctx, fmt.Sprintf("/v1beta/models/%s:predict", imageModel), req, &resp); err != nil {
		return ImageResult{}, err
	}
	if len(resp.Predictions) == 0 {
		return ImageResult{}, fmt.Errorf("no image in response: %w", ErrGenerationFailed)
	}

	image, err := base64.StdEncoding.DecodeString(resp.Predictions[0].BytesBase64Encoded)
	if err != nil {
		return ImageResult{}, fmt.Errorf("decoding image bytes: %w", ErrGenerationFailed)
	}
	mimeType := resp.Predictions[0].MIMEType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return ImageResult{Image: image, MIMEType: mimeType, Prompt: prompt}, nil
}

// AnalyzePhoto sends one image plus a prompt for multimodal analysis. An
// empty prompt falls back to the stock match-photo question.
func (c *APIClient) AnalyzePhoto(ctx context.Context, prompt string, image []byte, mimeType string) (AnalysisResult, error) {
	if strings.TrimSpace(prompt) == "" {
		prompt = "Analyze this Flameunter FC match photo. What is happening? Who has the advantage?"
	}
	req := generateContentRequest{
		Contents: []content{{Parts: []part{
			{InlineData: &inlineData{MIMEType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
			{Text: prompt},
		}}},
	}
	resp, err := c.generateContent(ctx, req)
	if err != nil {
		return AnalysisResult{}, err
	}
	return AnalysisResult{Text: firstText(resp)}, nil
}

func (c *APIClient) generateContent(ctx context.Context, req generateContentRequest) (generateContentResponse, error) {
	var resp generateContentResponse
	if err := c.post(ctx, fmt.Sprintf("/v1beta/models/%s:generateContent", textModel), req, &resp); err != nil {
		return generateContentResponse{}, err
	}
	if len(resp.Candidates) == 0 {
		return generateContentResponse{}, fmt.Errorf("no candidates in response: %w", ErrGenerationFailed)
	}
	return resp, nil
}

// post sends one request/response exchange. Any failure collapses into
// ErrGenerationFailed; the collaborator is opaque and calls are never retried.
func (c *APIClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	url := c.BaseURL + path
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	log.Debug("Calling Generative Language API", "path", path)
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Error("Generative Language API call failed", "path", path, "error", err)
		return fmt.Errorf("calling %s: %w", path, ErrGenerationFailed)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(httpResp.Body)
		log.Error("Generative Language API rejected request", "path", path, "status", httpResp.StatusCode, "body", string(respBody))
		return fmt.Errorf("api returned status %d: %w", httpResp.StatusCode, ErrGenerationFailed)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		log.Error("Failed to decode Generative Language API response", "path", path, "error", err)
		return fmt.Errorf("decoding response: %w", ErrGenerationFailed)
	}
	return nil
}

func firstText(resp generateContentResponse) string {
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

func collectSources(resp generateContentResponse, pick func(groundingChunk) *chunkSource) []Source {
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return nil
	}
	var sources []Source
	for _, ch := range meta.GroundingChunks {
		if src := pick(ch); src != nil {
			sources = append(sources, Source{URI: src.URI, Title: src.Title})
		}
	}
	return sources
}
