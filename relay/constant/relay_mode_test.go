package constant

import "testing"

func TestPath2RelayMode(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"/v1/images/generations", RelayModeImageGenerations},
		{"/v1/images/edits", RelayModeImageEdits},
		{"/v1/video/generations", RelayModeVideoGenerations},
		{"/v1/generations/result", RelayModeGenerationResult},
		{"/v1/generations/result?task_id=gen_abc", RelayModeGenerationResult},
		{"/v1/chat/completions", RelayModeUnknown},
		{"", RelayModeUnknown},
	}
	for _, tt := range tests {
		if got := Path2RelayMode(tt.path); got != tt.want {
			t.Errorf("Path2RelayMode(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestModelName2APIType(t *testing.T) {
	tests := []struct {
		model string
		want  int
	}{
		{"local/sd-xl-base-1.0", APITypeLocalSD},
		{"local/anything", APITypeLocalSD},
		{"flux/dev", APITypeAIMLAPI},
		{"dall-e-3", APITypeAIMLAPI},
		{"", APITypeAIMLAPI},
	}
	for _, tt := range tests {
		if got := ModelName2APIType(tt.model); got != tt.want {
			t.Errorf("ModelName2APIType(%q) = %d, want %d", tt.model, got, tt.want)
		}
	}
}
