package genai

// AspectRatio is the set of image shapes the art generator accepts.
type AspectRatio string

const (
	RatioSquare         AspectRatio = "1:1"
	RatioPortrait       AspectRatio = "9:16"
	RatioLandscape      AspectRatio = "16:9"
	RatioPhotoPortrait  AspectRatio = "3:4"
	RatioPhotoLandscape AspectRatio = "4:3"
)

// Valid reports whether the ratio is one the image model accepts.
func (r AspectRatio) Valid() bool {
	switch r {
	case RatioSquare, RatioPortrait, RatioLandscape, RatioPhotoPortrait, RatioPhotoLandscape:
		return true
	}
	return false
}

// Source is one citation attached to a grounded response.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// NewsResult is the outcome of a grounded text search: prose plus its web
// citations, in the order the model returned them.
type NewsResult struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// MapResult is the outcome of a grounded place lookup.
type MapResult struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// ImageResult is one generated image.
type ImageResult struct {
	Image    []byte `json:"image"`
	MIMEType string `json:"mime_type"`
	Prompt   string `json:"prompt"`
}

// AnalysisResult is the prose returned by multimodal photo analysis.
type AnalysisResult struct {
	Text string `json:"text"`
}

// --- wire types for the Generative Language REST API --- //

type generateContentRequest struct {
	Contents   []content   `json:"contents"`
	Tools      []tool      `json:"tools,omitempty"`
	ToolConfig *toolConfig `json:"toolConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type tool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
	GoogleMaps   *struct{} `json:"googleMaps,omitempty"`
}

type toolConfig struct {
	RetrievalConfig *retrievalConfig `json:"retrievalConfig,omitempty"`
}

type retrievalConfig struct {
	LatLng latLng `json:"latLng"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content           content            `json:"content"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata"`
}

type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks"`
}

type groundingChunk struct {
	Web  *chunkSource `json:"web"`
	Maps *chunkSource `json:"maps"`
}

type chunkSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type generateImagesRequest struct {
	Instances  []imageInstance `json:"instances"`
	Parameters imageParameters `json:"parameters"`
}

type imageInstance struct {
	Prompt string `json:"prompt"`
}

type imageParameters struct {
	SampleCount    int    `json:"sampleCount"`
	AspectRatio    string `json:"aspectRatio"`
	OutputMIMEType string `json:"outputMimeType"`
}

type generateImagesResponse struct {
	Predictions []imagePrediction `json:"predictions"`
}

type imagePrediction struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
	MIMEType           string `json:"mimeType"`
}
