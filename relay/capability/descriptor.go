package capability

import (
	"encoding/json"
	"sort"
)

// Param identifies one tuning knob of a generation request. The value is the
// wire key the aggregation API expects, so membership checks and payload
// shaping use the same vocabulary.
type Param string

const (
	ParamStrength       Param = "strength"
	ParamSteps          Param = "num_inference_steps"
	ParamGuidanceScale  Param = "guidance_scale"
	ParamNegativePrompt Param = "negative_prompt"
	ParamSeed           Param = "seed"
	ParamNumImages      Param = "num_images"
	ParamSafetyChecker  Param = "enable_safety_checker"
	ParamWatermark      Param = "watermark"
	ParamEnhancePrompt  Param = "enhance_prompt"
	ParamDuration       Param = "duration"
	ParamAspectRatio    Param = "aspect_ratio"
	ParamCameraControl  Param = "camera_control"
	ParamFrameRate      Param = "frame_rate"
	ParamStylePreset    Param = "style_preset"
)

type ParamSet map[Param]bool

func NewParamSet(params ...Param) ParamSet {
	set := make(ParamSet, len(params))
	for _, p := range params {
		set[p] = true
	}
	return set
}

func (s ParamSet) Has(p Param) bool {
	return s[p]
}

// MarshalJSON renders the set as a sorted array so descriptor output is
// stable across requests.
func (s ParamSet) MarshalJSON() ([]byte, error) {
	params := make([]string, 0, len(s))
	for p := range s {
		params = append(params, string(p))
	}
	sort.Strings(params)
	return json.Marshal(params)
}

func (s *ParamSet) UnmarshalJSON(data []byte) error {
	var params []string
	if err := json.Unmarshal(data, &params); err != nil {
		return err
	}
	set := make(ParamSet, len(params))
	for _, p := range params {
		set[Param(p)] = true
	}
	*s = set
	return nil
}

// Descriptor is the capability record for one model identifier. It is the
// single source of truth for which parameters survive filtering, how input
// images are attached and which resolutions may be requested.
type Descriptor struct {
	Id             string `json:"id"`
	IsImageToImage bool   `json:"is_image_to_image"`
	// MaxInputImages is the hard cap on attached input images. Zero means
	// the model is text-only.
	MaxInputImages  int      `json:"max_input_images"`
	SupportedParams ParamSet `json:"supported_params"`
	// SupportsCustomResolution allows arbitrary width/height up to
	// MaxWidth/MaxHeight; otherwise DefaultImageSize applies when the
	// request names no size.
	SupportsCustomResolution bool   `json:"supports_custom_resolution"`
	DefaultImageSize         string `json:"default_image_size,omitempty"`
	// ImageInputParam is the wire field input images are sent under. The
	// name varies per model: singular vs plural, URL vs array.
	ImageInputParam    string `json:"image_input_param,omitempty"`
	AcceptsMultiImages bool   `json:"accepts_multi_images"`
	AcceptsBase64      bool   `json:"accepts_base64"`
	AcceptsPublicURL   bool   `json:"accepts_public_url"`
	MaxWidth           int    `json:"max_width,omitempty"`
	MaxHeight          int    `json:"max_height,omitempty"`
	IsVideo            bool   `json:"is_video"`
}
