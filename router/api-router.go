package router

import (
	"github.com/gin-gonic/gin"

	"github.com/artloom/mediagate/controller"
	"github.com/artloom/mediagate/middleware"
)

func SetApiRouter(router *gin.Engine) {
	apiRouter := router.Group("/api")
	apiRouter.Use(middleware.GlobalAPIRateLimit())
	{
		apiRouter.GET("/status", controller.GetStatus)
	}
}
