package aimlapi

// ImageResponse is the synchronous response of the image generation
// endpoint.
type ImageResponse struct {
	Images []ImageData `json:"images"`
	Seed   int64       `json:"seed,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type ImageData struct {
	URL         string `json:"url,omitempty"`
	B64JSON     string `json:"b64_json,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// VideoResponse is the asynchronous accept response of the video
// generation endpoint; the result arrives via polling.
type VideoResponse struct {
	GenerationId string `json:"generation_id"`
	Status       string `json:"status,omitempty"`
	Error        string `json:"error,omitempty"`
}

// VideoResultResponse is the polling response for a video generation.
type VideoResultResponse struct {
	GenerationId string `json:"generation_id"`
	Status       string `json:"status"`
	Video        *struct {
		URL string `json:"url"`
	} `json:"video,omitempty"`
	Error string `json:"error,omitempty"`
}
