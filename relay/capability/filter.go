package capability

import (
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"

	"github.com/artloom/mediagate/common/image"
	relaymodel "github.com/artloom/mediagate/relay/model"
)

// FilterParams returns a copy of the bag with every field the descriptor
// does not support set to nil, plus the resolution shaping the descriptor
// calls for. The input is never mutated; the caller may still need it for
// logging.
func FilterParams(params relaymodel.GenerationParams, d Descriptor) relaymodel.GenerationParams {
	var out relaymodel.GenerationParams
	_ = copier.Copy(&out, &params)

	if !d.SupportedParams.Has(ParamStrength) {
		out.Strength = nil
	}
	if !d.SupportedParams.Has(ParamSteps) {
		out.Steps = nil
	}
	if !d.SupportedParams.Has(ParamGuidanceScale) {
		out.GuidanceScale = nil
	}
	if !d.SupportedParams.Has(ParamNegativePrompt) {
		out.NegativePrompt = nil
	}
	if !d.SupportedParams.Has(ParamSeed) {
		out.Seed = nil
	}
	if !d.SupportedParams.Has(ParamNumImages) {
		out.NumImages = nil
	}
	if !d.SupportedParams.Has(ParamSafetyChecker) {
		out.SafetyChecker = nil
	}
	if !d.SupportedParams.Has(ParamWatermark) {
		out.Watermark = nil
	}
	if !d.SupportedParams.Has(ParamEnhancePrompt) {
		out.EnhancePrompt = nil
	}
	if !d.SupportedParams.Has(ParamDuration) {
		out.Duration = nil
	}
	if !d.SupportedParams.Has(ParamAspectRatio) {
		out.AspectRatio = nil
	}
	if !d.SupportedParams.Has(ParamCameraControl) {
		out.CameraControl = nil
	}
	if !d.SupportedParams.Has(ParamFrameRate) {
		out.FrameRate = nil
	}
	if !d.SupportedParams.Has(ParamStylePreset) {
		out.StylePreset = nil
	}

	shapeResolution(&out, d)
	return out
}

// shapeResolution applies the descriptor's size rules: custom-resolution
// models get width/height clamped to their bounds, fixed-size models get
// DefaultImageSize when the request names no size of its own.
func shapeResolution(params *relaymodel.GenerationParams, d Descriptor) {
	if d.SupportsCustomResolution {
		if params.Width != nil && d.MaxWidth > 0 && *params.Width > d.MaxWidth {
			w := d.MaxWidth
			params.Width = &w
		}
		if params.Height != nil && d.MaxHeight > 0 && *params.Height > d.MaxHeight {
			h := d.MaxHeight
			params.Height = &h
		}
		return
	}

	params.Width = nil
	params.Height = nil
	if params.ImageSize == nil && params.AspectRatio == nil && d.DefaultImageSize != "" {
		size := d.DefaultImageSize
		params.ImageSize = &size
	}
}

// ValidateRequest checks the preconditions the registry itself never
// enforces: input-image count and reference encodings. Violations are
// caller errors reported before any network submission.
func ValidateRequest(req *relaymodel.GenerationRequest, d Descriptor) error {
	if len(req.Images) == 0 {
		return nil
	}
	if !d.IsImageToImage {
		return errors.Errorf("model %s does not accept input images", d.Id)
	}
	if len(req.Images) > d.MaxInputImages {
		return errors.Errorf("model %s accepts at most %d input image(s), got %d", d.Id, d.MaxInputImages, len(req.Images))
	}
	if !d.AcceptsMultiImages && len(req.Images) > 1 {
		return errors.Errorf("model %s accepts a single input image, got %d", d.Id, len(req.Images))
	}
	for _, ref := range req.Images {
		if image.IsDataURL(ref) {
			if !d.AcceptsBase64 {
				return errors.Errorf("model %s does not accept base64 image data", d.Id)
			}
		} else if !d.AcceptsPublicURL {
			return errors.Errorf("model %s does not accept image URLs", d.Id)
		}
	}
	return nil
}
