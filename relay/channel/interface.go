package channel

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artloom/mediagate/relay/capability"
	"github.com/artloom/mediagate/relay/model"
	"github.com/artloom/mediagate/relay/util"
)

// Adaptor shapes validated generation requests into one upstream's wire
// format and normalizes its responses. Implementations receive parameter
// bags that have already been filtered against the model's descriptor.
type Adaptor interface {
	Init(meta *util.RelayMeta)
	GetRequestURL(meta *util.RelayMeta) (string, error)
	SetupRequestHeader(c *gin.Context, req *http.Request, meta *util.RelayMeta) error
	ConvertGenerationRequest(c *gin.Context, request *model.GenerationRequest, descriptor capability.Descriptor, meta *util.RelayMeta) (any, error)
	DoRequest(c *gin.Context, meta *util.RelayMeta, requestBody io.Reader) (*http.Response, error)
	DoResponse(c *gin.Context, resp *http.Response, meta *util.RelayMeta) (*model.GenerationResponse, *model.ErrorWithStatusCode)
	GetModelList() []string
	GetChannelName() string
}
