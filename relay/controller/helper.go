package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/artloom/mediagate/relay/channel"
	"github.com/artloom/mediagate/relay/channel/aimlapi"
	"github.com/artloom/mediagate/relay/channel/localsd"
	"github.com/artloom/mediagate/relay/constant"
	"github.com/artloom/mediagate/relay/util"
)

// pendingRecorder is implemented by adaptors that persist a task row before
// the upstream call.
type pendingRecorder interface {
	CreatePendingRecord(c *gin.Context, meta *util.RelayMeta) error
}

func GetAdaptor(apiType int) channel.Adaptor {
	switch apiType {
	case constant.APITypeAIMLAPI:
		return &aimlapi.Adaptor{}
	case constant.APITypeLocalSD:
		return &localsd.Adaptor{}
	}
	return nil
}
