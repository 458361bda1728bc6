package router

import (
	"github.com/gin-gonic/gin"

	"github.com/artloom/mediagate/controller"
)

func SetRouter(router *gin.Engine) {
	SetApiRouter(router)
	SetRelayRouter(router)
	router.NoRoute(controller.RelayNotFound)
}
