package util

import (
	"github.com/gin-gonic/gin"

	"github.com/artloom/mediagate/common/config"
	"github.com/artloom/mediagate/relay/constant"
)

type RelayMeta struct {
	Mode      int
	APIType   int
	TokenId   int
	TokenName string
	// BaseURL points at the upstream serving the requested model.
	BaseURL string
	APIKey  string
	// OriginModelName is the model name from the raw user request.
	OriginModelName string
	// ActualModelName is the name sent upstream; for local models the
	// "local/" routing prefix is stripped.
	ActualModelName string
	RequestURLPath  string
}

func GetRelayMeta(c *gin.Context) *RelayMeta {
	modelName := c.GetString("original_model")
	apiType := constant.ModelName2APIType(modelName)

	meta := RelayMeta{
		Mode:            constant.Path2RelayMode(c.Request.URL.Path),
		APIType:         apiType,
		TokenId:         c.GetInt("token_id"),
		TokenName:       c.GetString("token_name"),
		OriginModelName: modelName,
		ActualModelName: modelName,
		RequestURLPath:  c.Request.URL.String(),
	}
	switch apiType {
	case constant.APITypeLocalSD:
		meta.BaseURL = config.LocalSDBaseURL
		meta.ActualModelName = modelName[len(constant.LocalModelPrefix):]
	default:
		meta.BaseURL = config.AIMLAPIBaseURL
		meta.APIKey = config.AIMLAPIKey
	}
	return &meta
}
