package aimlapi

import (
	"testing"

	"github.com/artloom/mediagate/relay/capability"
	relaymodel "github.com/artloom/mediagate/relay/model"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestBuildPayloadDropsUnsupportedParams(t *testing.T) {
	request := &relaymodel.GenerationRequest{
		Model:  "reve/edit-image",
		Prompt: "make the sky purple",
		Images: []string{"https://example.com/sky.png"},
		GenerationParams: relaymodel.GenerationParams{
			Steps:          intPtr(30),
			GuidanceScale:  floatPtr(7.0),
			NegativePrompt: strPtr("clouds"),
			NumImages:      intPtr(1),
		},
	}
	descriptor := capability.Lookup(request.Model)

	payload, err := BuildPayload(request, descriptor, request.Model)
	if err != nil {
		t.Fatalf("BuildPayload() error = %v", err)
	}

	if payload["prompt"] != "make the sky purple" {
		t.Errorf("payload prompt = %v", payload["prompt"])
	}
	if payload["model"] != "reve/edit-image" {
		t.Errorf("payload model = %v", payload["model"])
	}
	for _, key := range []string{"num_inference_steps", "guidance_scale", "negative_prompt"} {
		if _, ok := payload[key]; ok {
			t.Errorf("payload contains unsupported key %q", key)
		}
	}
	if payload["num_images"] != float64(1) {
		t.Errorf("payload num_images = %v, want 1", payload["num_images"])
	}
}

func TestBuildPayloadImageInputParam(t *testing.T) {
	tests := []struct {
		name      string
		model     string
		images    []string
		wantKey   string
		wantArray bool
	}{
		{
			name:      "single image under singular key",
			model:     "reve/edit-image",
			images:    []string{"https://example.com/a.png"},
			wantKey:   "image_url",
			wantArray: false,
		},
		{
			name:      "multi image under plural key",
			model:     "openai/gpt-image-1",
			images:    []string{"https://example.com/a.png", "https://example.com/b.png"},
			wantKey:   "image_urls",
			wantArray: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := &relaymodel.GenerationRequest{
				Model:  tt.model,
				Prompt: "p",
				Images: tt.images,
			}
			payload, err := BuildPayload(request, capability.Lookup(tt.model), tt.model)
			if err != nil {
				t.Fatalf("BuildPayload() error = %v", err)
			}

			value, ok := payload[tt.wantKey]
			if !ok {
				t.Fatalf("payload missing image key %q", tt.wantKey)
			}
			if _, isSlice := value.([]string); isSlice != tt.wantArray {
				t.Errorf("payload[%q] array = %v, want %v", tt.wantKey, isSlice, tt.wantArray)
			}
			if !tt.wantArray && value != tt.images[0] {
				t.Errorf("payload[%q] = %v, want %v", tt.wantKey, value, tt.images[0])
			}
		})
	}
}

func TestBuildPayloadNoImagesOnTextModel(t *testing.T) {
	request := &relaymodel.GenerationRequest{
		Model:  "dall-e-3",
		Prompt: "a red balloon",
	}
	payload, err := BuildPayload(request, capability.Lookup(request.Model), request.Model)
	if err != nil {
		t.Fatalf("BuildPayload() error = %v", err)
	}

	for _, key := range []string{"image", "image_url", "image_urls"} {
		if _, ok := payload[key]; ok {
			t.Errorf("payload contains unexpected image key %q", key)
		}
	}
	if payload["image_size"] != "1024x1024" {
		t.Errorf("payload image_size = %v, want default 1024x1024", payload["image_size"])
	}
}

func TestModelListResolvesToOwnDescriptors(t *testing.T) {
	// every advertised model should hit the fixed table, not the fallback
	known := map[string]bool{}
	for _, id := range capability.KnownModels() {
		known[id] = true
	}
	for _, id := range ModelList {
		if !known[id] {
			t.Errorf("model %q advertised but not in capability table", id)
		}
	}
}
