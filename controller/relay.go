package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artloom/mediagate/common/logger"
	relayconstant "github.com/artloom/mediagate/relay/constant"
	relaycontroller "github.com/artloom/mediagate/relay/controller"
	relaymodel "github.com/artloom/mediagate/relay/model"
)

// Relay dispatches by path: result lookups are read-only, everything else
// submits a generation.
func Relay(c *gin.Context) {
	relayMode := relayconstant.Path2RelayMode(c.Request.URL.Path)

	var relayErr *relaymodel.ErrorWithStatusCode
	switch relayMode {
	case relayconstant.RelayModeGenerationResult:
		relayErr = relaycontroller.GetGenerationResult(c)
	default:
		relayErr = relaycontroller.RelayGeneration(c)
	}

	if relayErr != nil {
		requestId := c.GetString(logger.RequestIdKey)
		logger.Errorf(c, "relay error (request id: %s): %s", requestId, relayErr.Error.Message)
		c.JSON(relayErr.StatusCode, gin.H{
			"error": relayErr.Error,
		})
	}
}

func RelayNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": relaymodel.Error{
			Message: "no route matching " + c.Request.URL.Path,
			Type:    "invalid_request_error",
		},
	})
}
