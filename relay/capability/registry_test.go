package capability

import (
	"reflect"
	"testing"
)

func TestLookupKnownModels(t *testing.T) {
	// every table entry must come back verbatim under its own key
	for id, want := range descriptors {
		t.Run(id, func(t *testing.T) {
			got := Lookup(id)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Lookup(%q) = %+v, want %+v", id, got, want)
			}
		})
	}
}

func TestLookupTableConsistency(t *testing.T) {
	for id, d := range descriptors {
		if d.Id != id {
			t.Errorf("descriptor key %q has Id %q", id, d.Id)
		}
		if d.MaxInputImages == 0 && d.IsImageToImage {
			t.Errorf("model %q: MaxInputImages == 0 but IsImageToImage is set", id)
		}
		if d.MaxInputImages == 0 && d.AcceptsMultiImages {
			t.Errorf("model %q: MaxInputImages == 0 but AcceptsMultiImages is set", id)
		}
		if !d.AcceptsMultiImages && d.MaxInputImages > 1 {
			t.Errorf("model %q: MaxInputImages %d without AcceptsMultiImages", id, d.MaxInputImages)
		}
		if d.IsImageToImage && d.ImageInputParam == "" {
			t.Errorf("model %q: image-to-image without ImageInputParam", id)
		}
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	tests := []struct {
		upper string
		lower string
	}{
		{"OpenAI/GPT-Image-1", "openai/gpt-image-1"},
		{"DALL-E-3", "dall-e-3"},
		{"Kling-Video/V2/Master/Text-To-Video", "kling-video/v2/master/text-to-video"},
	}

	for _, tt := range tests {
		t.Run(tt.upper, func(t *testing.T) {
			if !reflect.DeepEqual(Lookup(tt.upper), Lookup(tt.lower)) {
				t.Errorf("Lookup(%q) != Lookup(%q)", tt.upper, tt.lower)
			}
		})
	}
}

func TestLookupAlias(t *testing.T) {
	remix := Lookup("reve/remix-edit-image")
	edit := Lookup("reve/edit-image")

	if remix.Id != "reve/edit-image" {
		t.Errorf("Lookup(reve/remix-edit-image).Id = %q, want reve/edit-image", remix.Id)
	}
	if !reflect.DeepEqual(remix, edit) {
		t.Errorf("alias descriptor differs from canonical: %+v vs %+v", remix, edit)
	}
}

func TestLookupUnknownModel(t *testing.T) {
	tests := []struct {
		identifier string
		wantI2I    bool
	}{
		{"some-vendor/brand-new-model", false},
		{"some-vendor/magic-edit-v2", true},
		{"other/image-to-image-xl", true},
		{"Another/Edit-Thing", true},
		{"plain-text-model", false},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			d := Lookup(tt.identifier)
			if d.IsImageToImage != tt.wantI2I {
				t.Errorf("Lookup(%q).IsImageToImage = %v, want %v", tt.identifier, d.IsImageToImage, tt.wantI2I)
			}
			if !d.SupportsCustomResolution {
				t.Errorf("Lookup(%q).SupportsCustomResolution = false, want true", tt.identifier)
			}
			if d.MaxInputImages != 1 {
				t.Errorf("Lookup(%q).MaxInputImages = %d, want 1", tt.identifier, d.MaxInputImages)
			}
			if len(d.SupportedParams) == 0 {
				t.Errorf("Lookup(%q) returned empty SupportedParams", tt.identifier)
			}
		})
	}
}

func TestLookupEmptyIdentifier(t *testing.T) {
	d := Lookup("")
	if d.IsImageToImage {
		t.Error("Lookup(\"\") should not be image-to-image")
	}
	if !d.SupportsCustomResolution {
		t.Error("Lookup(\"\") should support custom resolution")
	}
	if len(d.SupportedParams) == 0 {
		t.Error("Lookup(\"\") returned empty SupportedParams")
	}
}

func TestLookupNeverEmpty(t *testing.T) {
	// lookup is total: arbitrary garbage still resolves to a usable descriptor
	inputs := []string{"", " ", "///", "EDIT", "模型", "a\tb", "openai/gpt-image-1 "}
	for _, in := range inputs {
		d := Lookup(in)
		if d.SupportedParams == nil {
			t.Errorf("Lookup(%q) returned nil SupportedParams", in)
		}
		if d.MaxInputImages == 0 && d.AcceptsMultiImages {
			t.Errorf("Lookup(%q): MaxInputImages == 0 but AcceptsMultiImages is set", in)
		}
	}
}

func TestKnownModels(t *testing.T) {
	models := KnownModels()
	if len(models) != len(descriptors) {
		t.Errorf("KnownModels() returned %d entries, want %d", len(models), len(descriptors))
	}
	for _, id := range models {
		if _, ok := descriptors[id]; !ok {
			t.Errorf("KnownModels() returned unknown id %q", id)
		}
	}
}
