package image

import "testing"

const pixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func TestIsDataURL(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"data:image/png;base64," + pixelPNG, true},
		{"data:image/jpeg;base64,/9j/4AAQ", true},
		{"https://example.com/a.png", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsDataURL(tt.ref); got != tt.want {
			t.Errorf("IsDataURL(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestParseDataURL(t *testing.T) {
	mimeType, data, ok := ParseDataURL("data:image/png;base64," + pixelPNG)
	if !ok {
		t.Fatal("ParseDataURL() ok = false")
	}
	if mimeType != "image/png" {
		t.Errorf("mime type = %q, want image/png", mimeType)
	}
	if data != pixelPNG {
		t.Errorf("data = %q, want raw base64 payload", data)
	}

	if _, _, ok := ParseDataURL("https://example.com/a.png"); ok {
		t.Error("ParseDataURL() ok = true for a plain URL")
	}
}

func TestGetImageSizeFromBase64(t *testing.T) {
	width, height, err := GetImageSizeFromBase64(pixelPNG)
	if err != nil {
		t.Fatalf("GetImageSizeFromBase64() error = %v", err)
	}
	if width != 1 || height != 1 {
		t.Errorf("size = %dx%d, want 1x1", width, height)
	}
}
