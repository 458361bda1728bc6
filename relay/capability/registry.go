package capability

import "strings"

// aliases maps retired or duplicated identifiers onto their canonical entry.
// Resolution happens before table lookup so the table never carries
// duplicate descriptors that could drift apart.
var aliases = map[string]string{
	"reve/remix-edit-image": "reve/edit-image",
}

var defaultParams = NewParamSet(
	ParamStrength,
	ParamSteps,
	ParamGuidanceScale,
	ParamNegativePrompt,
	ParamSeed,
	ParamNumImages,
	ParamSafetyChecker,
	ParamEnhancePrompt,
	ParamAspectRatio,
)

// descriptors holds every model the gateway knows first-hand. Keys are
// lowercase; Lookup lowercases before matching. The Id field of each entry
// must equal its key.
var descriptors = map[string]Descriptor{
	"openai/gpt-image-1": {
		Id:                 "openai/gpt-image-1",
		IsImageToImage:     true,
		MaxInputImages:     10,
		SupportedParams:    NewParamSet(ParamNumImages),
		DefaultImageSize:   "1024x1024",
		ImageInputParam:    "image_urls",
		AcceptsMultiImages: true,
		AcceptsBase64:      true,
		AcceptsPublicURL:   true,
	},
	"dall-e-3": {
		Id:               "dall-e-3",
		SupportedParams:  NewParamSet(ParamNumImages, ParamStylePreset),
		DefaultImageSize: "1024x1024",
	},
	"flux-pro/v1.1": {
		Id:                       "flux-pro/v1.1",
		SupportedParams:          NewParamSet(ParamSteps, ParamGuidanceScale, ParamSeed, ParamNumImages, ParamSafetyChecker),
		SupportsCustomResolution: true,
		DefaultImageSize:         "1024x1024",
		MaxWidth:                 1440,
		MaxHeight:                1440,
	},
	"flux/schnell": {
		Id:                       "flux/schnell",
		SupportedParams:          NewParamSet(ParamSteps, ParamSeed, ParamNumImages, ParamSafetyChecker),
		SupportsCustomResolution: true,
		DefaultImageSize:         "1024x1024",
		MaxWidth:                 1536,
		MaxHeight:                1536,
	},
	"flux/dev": {
		Id:                       "flux/dev",
		SupportedParams:          NewParamSet(ParamSteps, ParamGuidanceScale, ParamSeed, ParamNumImages, ParamSafetyChecker),
		SupportsCustomResolution: true,
		DefaultImageSize:         "1024x1024",
		MaxWidth:                 1536,
		MaxHeight:                1536,
	},
	"flux/dev/image-to-image": {
		Id:                       "flux/dev/image-to-image",
		IsImageToImage:           true,
		MaxInputImages:           1,
		SupportedParams:          NewParamSet(ParamStrength, ParamSteps, ParamGuidanceScale, ParamSeed, ParamNumImages, ParamSafetyChecker),
		SupportsCustomResolution: true,
		DefaultImageSize:         "1024x1024",
		ImageInputParam:          "image_url",
		AcceptsBase64:            true,
		AcceptsPublicURL:         true,
		MaxWidth:                 1536,
		MaxHeight:                1536,
	},
	"flux/kontext-pro": {
		Id:                 "flux/kontext-pro",
		IsImageToImage:     true,
		MaxInputImages:     4,
		SupportedParams:    NewParamSet(ParamAspectRatio, ParamSeed, ParamNumImages, ParamSafetyChecker),
		DefaultImageSize:   "1:1",
		ImageInputParam:    "image_urls",
		AcceptsMultiImages: true,
		AcceptsBase64:      true,
		AcceptsPublicURL:   true,
	},
	"stable-diffusion-v3-medium": {
		Id:                       "stable-diffusion-v3-medium",
		SupportedParams:          NewParamSet(ParamSteps, ParamGuidanceScale, ParamNegativePrompt, ParamSeed, ParamNumImages, ParamSafetyChecker),
		SupportsCustomResolution: true,
		DefaultImageSize:         "1024x1024",
		MaxWidth:                 1536,
		MaxHeight:                1536,
	},
	"stable-diffusion-v35-large": {
		Id:                       "stable-diffusion-v35-large",
		SupportedParams:          NewParamSet(ParamSteps, ParamGuidanceScale, ParamNegativePrompt, ParamSeed, ParamNumImages, ParamSafetyChecker),
		SupportsCustomResolution: true,
		DefaultImageSize:         "1024x1024",
		MaxWidth:                 1536,
		MaxHeight:                1536,
	},
	"reve/create-image": {
		Id:               "reve/create-image",
		SupportedParams:  NewParamSet(ParamNumImages, ParamAspectRatio, ParamEnhancePrompt),
		DefaultImageSize: "1024x1024",
	},
	"reve/edit-image": {
		Id:               "reve/edit-image",
		IsImageToImage:   true,
		MaxInputImages:   1,
		SupportedParams:  NewParamSet(ParamNumImages, ParamEnhancePrompt),
		DefaultImageSize: "1024x1024",
		ImageInputParam:  "image_url",
		AcceptsBase64:    true,
		AcceptsPublicURL: true,
	},
	"google/imagen4/preview": {
		Id:               "google/imagen4/preview",
		SupportedParams:  NewParamSet(ParamNumImages, ParamAspectRatio, ParamNegativePrompt, ParamSeed),
		DefaultImageSize: "1:1",
	},
	"google/veo3": {
		Id:               "google/veo3",
		SupportedParams:  NewParamSet(ParamDuration, ParamAspectRatio, ParamNegativePrompt, ParamSeed, ParamEnhancePrompt),
		DefaultImageSize: "16:9",
		IsVideo:          true,
	},
	"google/veo3/image-to-video": {
		Id:               "google/veo3/image-to-video",
		IsImageToImage:   true,
		MaxInputImages:   1,
		SupportedParams:  NewParamSet(ParamDuration, ParamAspectRatio, ParamNegativePrompt, ParamSeed, ParamEnhancePrompt),
		DefaultImageSize: "16:9",
		ImageInputParam:  "image_url",
		AcceptsBase64:    true,
		AcceptsPublicURL: true,
		IsVideo:          true,
	},
	"kling-video/v2/master/text-to-video": {
		Id:               "kling-video/v2/master/text-to-video",
		SupportedParams:  NewParamSet(ParamDuration, ParamAspectRatio, ParamNegativePrompt, ParamCameraControl),
		DefaultImageSize: "16:9",
		IsVideo:          true,
	},
	"kling-video/v2/master/image-to-video": {
		Id:               "kling-video/v2/master/image-to-video",
		IsImageToImage:   true,
		MaxInputImages:   1,
		SupportedParams:  NewParamSet(ParamDuration, ParamAspectRatio, ParamNegativePrompt, ParamCameraControl),
		DefaultImageSize: "16:9",
		ImageInputParam:  "image_url",
		AcceptsBase64:    true,
		AcceptsPublicURL: true,
		IsVideo:          true,
	},
	"minimax/video-01": {
		Id:               "minimax/video-01",
		SupportedParams:  NewParamSet(ParamEnhancePrompt, ParamDuration),
		DefaultImageSize: "16:9",
		IsVideo:          true,
	},
	"pixverse/v4.5/text-to-video": {
		Id:               "pixverse/v4.5/text-to-video",
		SupportedParams:  NewParamSet(ParamDuration, ParamAspectRatio, ParamFrameRate, ParamNegativePrompt, ParamStylePreset),
		DefaultImageSize: "16:9",
		IsVideo:          true,
	},
	"bytedance/seedream-3.0": {
		Id:                       "bytedance/seedream-3.0",
		SupportedParams:          NewParamSet(ParamGuidanceScale, ParamSeed, ParamWatermark),
		SupportsCustomResolution: true,
		DefaultImageSize:         "1024x1024",
		MaxWidth:                 2048,
		MaxHeight:                2048,
	},
	"bytedance/seededit-3.0": {
		Id:               "bytedance/seededit-3.0",
		IsImageToImage:   true,
		MaxInputImages:   1,
		SupportedParams:  NewParamSet(ParamGuidanceScale, ParamSeed, ParamWatermark),
		DefaultImageSize: "1024x1024",
		ImageInputParam:  "image_url",
		AcceptsBase64:    true,
		AcceptsPublicURL: true,
	},
	"recraft-v3": {
		Id:               "recraft-v3",
		SupportedParams:  NewParamSet(ParamStylePreset, ParamNumImages),
		DefaultImageSize: "1024x1024",
	},
	"runway/gen4/turbo": {
		Id:               "runway/gen4/turbo",
		IsImageToImage:   true,
		MaxInputImages:   1,
		SupportedParams:  NewParamSet(ParamDuration, ParamAspectRatio, ParamSeed),
		DefaultImageSize: "16:9",
		ImageInputParam:  "image_url",
		AcceptsBase64:    true,
		AcceptsPublicURL: true,
		IsVideo:          true,
	},
}

// Lookup resolves a model identifier to its capability descriptor. The
// lookup is total: identifiers without a table entry get a permissive
// default instead of an error, because the model list is sourced from the
// aggregation API at runtime and new models must keep working before the
// table learns about them.
func Lookup(identifier string) Descriptor {
	id := strings.ToLower(strings.TrimSpace(identifier))
	if canonical, ok := aliases[id]; ok {
		id = canonical
	}
	if d, ok := descriptors[id]; ok {
		return d
	}
	return defaultDescriptor(id)
}

// KnownModels returns the identifiers in the fixed table, sorted by the
// caller if ordering matters.
func KnownModels() []string {
	models := make([]string, 0, len(descriptors))
	for id := range descriptors {
		models = append(models, id)
	}
	return models
}

// defaultDescriptor guesses capabilities for a model the table does not
// know. An "edit" or "image-to-image" token in the identifier marks the
// model as image-to-image with a single input image; everything else is
// assumed to behave like the most common API shape.
func defaultDescriptor(id string) Descriptor {
	isI2I := strings.Contains(id, "edit") || strings.Contains(id, "image-to-image")
	imageInputParam := ""
	if isI2I {
		imageInputParam = "image_url"
	}
	return Descriptor{
		Id:                       id,
		IsImageToImage:           isI2I,
		MaxInputImages:           1,
		SupportedParams:          defaultParams,
		SupportsCustomResolution: true,
		DefaultImageSize:         "1024x1024",
		ImageInputParam:          imageInputParam,
		AcceptsBase64:            true,
		AcceptsPublicURL:         true,
	}
}
