package router

import (
	"github.com/gin-gonic/gin"

	"github.com/artloom/mediagate/controller"
	"github.com/artloom/mediagate/middleware"
)

func SetRelayRouter(router *gin.Engine) {
	router.Use(middleware.CORS())

	v1Router := router.Group("/v1")
	v1Router.Use(middleware.GlobalAPIRateLimit(), middleware.TokenAuth())
	{
		modelsRouter := v1Router.Group("/models")
		{
			modelsRouter.GET("", controller.ListModels)
			modelsRouter.GET("/:model", controller.RetrieveModel)
		}
		relayRouter := v1Router.Group("")
		relayRouter.Use(middleware.RelayPanicRecover())
		{
			relayRouter.POST("/images/generations", middleware.Distribute(), controller.Relay)
			relayRouter.POST("/images/edits", middleware.Distribute(), controller.Relay)
			relayRouter.POST("/video/generations", middleware.Distribute(), controller.Relay)
			relayRouter.GET("/generations/result", controller.Relay)
			relayRouter.GET("/generations", controller.ListGenerations)
		}
	}
}
