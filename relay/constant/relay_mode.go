package constant

import "strings"

const (
	RelayModeUnknown = iota
	RelayModeImageGenerations
	RelayModeImageEdits
	RelayModeVideoGenerations
	RelayModeGenerationResult
)

func Path2RelayMode(path string) int {
	relayMode := RelayModeUnknown
	if strings.HasPrefix(path, "/v1/images/generations") {
		relayMode = RelayModeImageGenerations
	} else if strings.HasPrefix(path, "/v1/images/edits") {
		relayMode = RelayModeImageEdits
	} else if strings.HasPrefix(path, "/v1/video/generations") {
		relayMode = RelayModeVideoGenerations
	} else if strings.HasPrefix(path, "/v1/generations/result") {
		relayMode = RelayModeGenerationResult
	}
	return relayMode
}
