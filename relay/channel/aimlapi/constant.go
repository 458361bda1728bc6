package aimlapi

const (
	TaskStatusPending    = "pending"
	TaskStatusProcessing = "processing"
	TaskStatusSucceeded  = "succeeded"
	TaskStatusFailed     = "failed"
)

// ModelList mirrors the aggregation API's catalog. Models outside this list
// still relay fine because capability lookup degrades to a permissive
// default; the list only feeds the public catalog endpoint.
var ModelList = []string{
	"openai/gpt-image-1",
	"dall-e-3",
	"flux-pro/v1.1",
	"flux/schnell",
	"flux/dev",
	"flux/dev/image-to-image",
	"flux/kontext-pro",
	"stable-diffusion-v3-medium",
	"stable-diffusion-v35-large",
	"reve/create-image",
	"reve/edit-image",
	"google/imagen4/preview",
	"google/veo3",
	"google/veo3/image-to-video",
	"kling-video/v2/master/text-to-video",
	"kling-video/v2/master/image-to-video",
	"minimax/video-01",
	"pixverse/v4.5/text-to-video",
	"bytedance/seedream-3.0",
	"bytedance/seededit-3.0",
	"recraft-v3",
	"runway/gen4/turbo",
}
