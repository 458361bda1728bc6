package localsd

const (
	TaskStatusPending   = "pending"
	TaskStatusSucceeded = "succeeded"
	TaskStatusFailed    = "failed"
)

// ModelList names the checkpoints the local server ships with. The actual
// set depends on the deployment; unknown checkpoints still work through
// the permissive capability fallback.
var ModelList = []string{
	"local/sd-xl-base-1.0",
	"local/sd-xl-refiner-1.0",
	"local/dreamshaper-8",
	"local/realistic-vision-v6",
}
