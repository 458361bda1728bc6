package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	relaymodel "github.com/artloom/mediagate/relay/model"
)

func intPtr(v int) *int           { return &v }
func int64Ptr(v int64) *int64     { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
func boolPtr(v bool) *bool        { return &v }

func fullParams() relaymodel.GenerationParams {
	return relaymodel.GenerationParams{
		Strength:       floatPtr(0.8),
		Steps:          intPtr(30),
		GuidanceScale:  floatPtr(7.5),
		NegativePrompt: strPtr("blurry"),
		Seed:           int64Ptr(42),
		NumImages:      intPtr(2),
		SafetyChecker:  boolPtr(true),
		Watermark:      boolPtr(false),
		EnhancePrompt:  boolPtr(true),
		Duration:       intPtr(5),
		AspectRatio:    strPtr("16:9"),
		CameraControl:  &relaymodel.CameraControl{Type: "simple"},
		FrameRate:      intPtr(24),
		StylePreset:    strPtr("digital_illustration"),
	}
}

func TestFilterParamsDropsUnsupported(t *testing.T) {
	d := Lookup("reve/edit-image") // supports num_images + enhance_prompt only
	got := FilterParams(fullParams(), d)

	assert.Nil(t, got.Strength)
	assert.Nil(t, got.Steps)
	assert.Nil(t, got.GuidanceScale)
	assert.Nil(t, got.NegativePrompt)
	assert.Nil(t, got.Seed)
	assert.Nil(t, got.SafetyChecker)
	assert.Nil(t, got.Watermark)
	assert.Nil(t, got.Duration)
	assert.Nil(t, got.AspectRatio)
	assert.Nil(t, got.CameraControl)
	assert.Nil(t, got.FrameRate)
	assert.Nil(t, got.StylePreset)

	require.NotNil(t, got.NumImages)
	assert.Equal(t, 2, *got.NumImages)
	require.NotNil(t, got.EnhancePrompt)
	assert.True(t, *got.EnhancePrompt)
}

func TestFilterParamsDoesNotMutateInput(t *testing.T) {
	in := fullParams()
	_ = FilterParams(in, Lookup("dall-e-3"))

	require.NotNil(t, in.Steps)
	assert.Equal(t, 30, *in.Steps)
	require.NotNil(t, in.CameraControl)
}

func TestFilterParamsAppliesDefaultSize(t *testing.T) {
	d := Lookup("dall-e-3") // fixed sizes only
	in := fullParams()
	in.AspectRatio = nil
	in.Width = intPtr(1920)
	in.Height = intPtr(1080)

	got := FilterParams(in, d)

	assert.Nil(t, got.Width, "fixed-size model must not receive width")
	assert.Nil(t, got.Height, "fixed-size model must not receive height")
	require.NotNil(t, got.ImageSize)
	assert.Equal(t, "1024x1024", *got.ImageSize)
}

func TestFilterParamsKeepsExplicitSize(t *testing.T) {
	d := Lookup("dall-e-3")
	in := relaymodel.GenerationParams{ImageSize: strPtr("512x512")}

	got := FilterParams(in, d)

	require.NotNil(t, got.ImageSize)
	assert.Equal(t, "512x512", *got.ImageSize)
}

func TestFilterParamsClampsCustomResolution(t *testing.T) {
	d := Lookup("flux/dev") // custom resolution up to 1536
	in := relaymodel.GenerationParams{
		Width:  intPtr(4096),
		Height: intPtr(1024),
	}

	got := FilterParams(in, d)

	require.NotNil(t, got.Width)
	require.NotNil(t, got.Height)
	assert.Equal(t, 1536, *got.Width)
	assert.Equal(t, 1024, *got.Height)
	assert.Nil(t, got.ImageSize)
}

func TestValidateRequest(t *testing.T) {
	dataURL := "data:image/png;base64,iVBORw0KGgo="
	publicURL := "https://example.com/cat.png"

	tests := []struct {
		name    string
		model   string
		images  []string
		wantErr bool
	}{
		{"text only always passes", "dall-e-3", nil, false},
		{"image on text-only model", "dall-e-3", []string{publicURL}, true},
		{"single image on edit model", "reve/edit-image", []string{publicURL}, false},
		{"too many images", "reve/edit-image", []string{publicURL, publicURL}, true},
		{"multi image within cap", "openai/gpt-image-1", []string{publicURL, dataURL}, false},
		{"data url accepted", "flux/dev/image-to-image", []string{dataURL}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &relaymodel.GenerationRequest{
				Model:  tt.model,
				Prompt: "a prompt",
				Images: tt.images,
			}
			err := ValidateRequest(req, Lookup(tt.model))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRequestEncodings(t *testing.T) {
	d := Lookup("reve/edit-image")
	d.AcceptsBase64 = false

	err := ValidateRequest(&relaymodel.GenerationRequest{
		Model:  "reve/edit-image",
		Prompt: "p",
		Images: []string{"data:image/png;base64,iVBORw0KGgo="},
	}, d)
	require.Error(t, err)

	d.AcceptsBase64 = true
	d.AcceptsPublicURL = false
	err = ValidateRequest(&relaymodel.GenerationRequest{
		Model:  "reve/edit-image",
		Prompt: "p",
		Images: []string{"https://example.com/a.png"},
	}, d)
	require.Error(t, err)
}
