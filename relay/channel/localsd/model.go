package localsd

// Txt2ImgRequest is the JSON body of the local server's txt2img endpoint
// (Automatic1111-compatible API).
type Txt2ImgRequest struct {
	Prompt           string         `json:"prompt"`
	NegativePrompt   string         `json:"negative_prompt,omitempty"`
	Steps            int            `json:"steps,omitempty"`
	CfgScale         float64        `json:"cfg_scale,omitempty"`
	Seed             int64          `json:"seed,omitempty"`
	BatchSize        int            `json:"batch_size,omitempty"`
	Width            int            `json:"width,omitempty"`
	Height           int            `json:"height,omitempty"`
	OverrideSettings map[string]any `json:"override_settings,omitempty"`
}

// Img2ImgRequest adds the conditioning images to the txt2img body.
type Img2ImgRequest struct {
	Txt2ImgRequest
	// InitImages holds raw base64 payloads, no data URL prefix.
	InitImages        []string `json:"init_images"`
	DenoisingStrength float64  `json:"denoising_strength,omitempty"`
}

// GenerationResult is the response of both endpoints.
type GenerationResult struct {
	Images []string `json:"images"`
	Info   string   `json:"info,omitempty"`
	Detail string   `json:"detail,omitempty"`
}
