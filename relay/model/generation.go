package model

// GenerationParams is the optional-valued bag of every tuning knob across
// all supported models. JSON tags are the fixed wire keys the upstream APIs
// expect; fields a model does not support are nilled out by the capability
// filter before the payload is built.
type GenerationParams struct {
	Strength       *float64       `json:"strength,omitempty"`
	Steps          *int           `json:"num_inference_steps,omitempty"`
	GuidanceScale  *float64       `json:"guidance_scale,omitempty"`
	NegativePrompt *string        `json:"negative_prompt,omitempty"`
	Seed           *int64         `json:"seed,omitempty"`
	NumImages      *int           `json:"num_images,omitempty"`
	SafetyChecker  *bool          `json:"enable_safety_checker,omitempty"`
	Watermark      *bool          `json:"watermark,omitempty"`
	EnhancePrompt  *bool          `json:"enhance_prompt,omitempty"`
	Duration       *int           `json:"duration,omitempty"`
	AspectRatio    *string        `json:"aspect_ratio,omitempty"`
	CameraControl  *CameraControl `json:"camera_control,omitempty"`
	FrameRate      *int           `json:"frame_rate,omitempty"`
	StylePreset    *string        `json:"style_preset,omitempty"`

	// Resolution plumbing. Width/Height are honored only by models with
	// custom resolution support; ImageSize carries a size or aspect token
	// ("1024x1024", "16:9") for the rest.
	Width     *int    `json:"width,omitempty"`
	Height    *int    `json:"height,omitempty"`
	ImageSize *string `json:"image_size,omitempty"`
}

// CameraControl is the camera movement payload accepted by some video
// models. Passed through opaque except for the type tag.
type CameraControl struct {
	Type   string             `json:"type,omitempty"`
	Config map[string]float64 `json:"config,omitempty"`
}

// GenerationRequest is the client-facing request body. Prompt and Images
// are identifier-independent plumbing and always survive filtering.
type GenerationRequest struct {
	Model  string `json:"model" binding:"required"`
	Prompt string `json:"prompt" binding:"required"`
	// Images holds input image references, either public URLs or base64
	// data URLs.
	Images []string `json:"images,omitempty"`

	GenerationParams
}

type GenerationResponse struct {
	TaskId  string   `json:"task_id"`
	Model   string   `json:"model"`
	Status  string   `json:"status"`
	Results []string `json:"results,omitempty"`
	Error   string   `json:"error,omitempty"`
}
