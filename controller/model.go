package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artloom/mediagate/relay/capability"
	relayconstant "github.com/artloom/mediagate/relay/constant"
	relaycontroller "github.com/artloom/mediagate/relay/controller"
	relaymodel "github.com/artloom/mediagate/relay/model"
)

// ModelDetail pairs a catalog entry with the capabilities clients need to
// shape their requests.
type ModelDetail struct {
	relaymodel.APIModel
	Capabilities capability.Descriptor `json:"capabilities"`
}

var modelCatalog []relaymodel.APIModel

func init() {
	for _, apiType := range []int{relayconstant.APITypeAIMLAPI, relayconstant.APITypeLocalSD} {
		adaptor := relaycontroller.GetAdaptor(apiType)
		for _, name := range adaptor.GetModelList() {
			modelCatalog = append(modelCatalog, relaymodel.APIModel{
				Provider: adaptor.GetChannelName(),
				Name:     name,
				Tags:     modelTags(capability.Lookup(name)),
			})
		}
	}
}

func modelTags(d capability.Descriptor) []string {
	var tags []string
	if d.IsVideo {
		tags = append(tags, "video")
	} else {
		tags = append(tags, "image")
	}
	if d.IsImageToImage {
		tags = append(tags, "image-to-image")
	}
	if d.SupportsCustomResolution {
		tags = append(tags, "custom-resolution")
	}
	return tags
}

func ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   modelCatalog,
	})
}

// RetrieveModel serves the capability descriptor of one model. Unknown
// identifiers answer with the permissive default rather than 404, matching
// relay behavior.
func RetrieveModel(c *gin.Context) {
	name := c.Param("model")
	descriptor := capability.Lookup(name)

	detail := ModelDetail{
		APIModel: relaymodel.APIModel{
			Name: descriptor.Id,
			Tags: modelTags(descriptor),
		},
		Capabilities: descriptor,
	}
	for _, entry := range modelCatalog {
		if entry.Name == name {
			detail.APIModel = entry
			break
		}
	}
	c.JSON(http.StatusOK, detail)
}
