package localsd

import (
	"testing"

	"github.com/artloom/mediagate/relay/capability"
	relaymodel "github.com/artloom/mediagate/relay/model"
)

func intPtr(v int) *int           { return &v }
func int64Ptr(v int64) *int64     { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestBuildPayloadTxt2Img(t *testing.T) {
	request := &relaymodel.GenerationRequest{
		Model:  "local/dreamshaper-8",
		Prompt: "a lighthouse at dawn",
		GenerationParams: relaymodel.GenerationParams{
			Steps:          intPtr(28),
			GuidanceScale:  floatPtr(6.5),
			NegativePrompt: strPtr("blurry"),
			Seed:           int64Ptr(42),
			NumImages:      intPtr(2),
			Width:          intPtr(768),
			Height:         intPtr(512),
		},
	}
	descriptor := capability.Lookup(request.Model)

	payload, img2img, err := BuildPayload(request, descriptor, "dreamshaper-8")
	if err != nil {
		t.Fatalf("BuildPayload() error = %v", err)
	}
	if img2img {
		t.Fatal("BuildPayload() img2img = true without input images")
	}

	body, ok := payload.(Txt2ImgRequest)
	if !ok {
		t.Fatalf("payload type = %T, want Txt2ImgRequest", payload)
	}
	if body.Prompt != "a lighthouse at dawn" {
		t.Errorf("prompt = %q", body.Prompt)
	}
	if body.Steps != 28 || body.CfgScale != 6.5 || body.Seed != 42 {
		t.Errorf("sampler settings = steps %d cfg %v seed %d", body.Steps, body.CfgScale, body.Seed)
	}
	if body.NegativePrompt != "blurry" {
		t.Errorf("negative_prompt = %q", body.NegativePrompt)
	}
	if body.BatchSize != 2 {
		t.Errorf("batch_size = %d, want 2", body.BatchSize)
	}
	if body.Width != 768 || body.Height != 512 {
		t.Errorf("size = %dx%d, want 768x512", body.Width, body.Height)
	}
	if body.OverrideSettings["sd_model_checkpoint"] != "dreamshaper-8" {
		t.Errorf("sd_model_checkpoint = %v", body.OverrideSettings["sd_model_checkpoint"])
	}
}

func TestBuildPayloadImg2Img(t *testing.T) {
	// 1x1 transparent PNG
	pixel := "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="
	request := &relaymodel.GenerationRequest{
		Model:  "local/sd-xl-base-1.0-edit",
		Prompt: "turn the car red",
		Images: []string{"data:image/png;base64," + pixel},
		GenerationParams: relaymodel.GenerationParams{
			Strength: floatPtr(0.6),
		},
	}
	descriptor := capability.Lookup(request.Model)
	if !descriptor.IsImageToImage {
		t.Fatalf("descriptor for %q should allow input images", request.Model)
	}

	payload, img2img, err := BuildPayload(request, descriptor, "sd-xl-base-1.0-edit")
	if err != nil {
		t.Fatalf("BuildPayload() error = %v", err)
	}
	if !img2img {
		t.Fatal("BuildPayload() img2img = false with input images")
	}

	body, ok := payload.(Img2ImgRequest)
	if !ok {
		t.Fatalf("payload type = %T, want Img2ImgRequest", payload)
	}
	if len(body.InitImages) != 1 || body.InitImages[0] != pixel {
		t.Errorf("init_images = %v, want stripped base64 payload", body.InitImages)
	}
	if body.DenoisingStrength != 0.6 {
		t.Errorf("denoising_strength = %v, want 0.6", body.DenoisingStrength)
	}
}

func TestModelListUsesLocalPrefix(t *testing.T) {
	for _, id := range ModelList {
		if len(id) < len("local/") || id[:len("local/")] != "local/" {
			t.Errorf("model %q missing local/ routing prefix", id)
		}
	}
}
