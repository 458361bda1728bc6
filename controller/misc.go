package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artloom/mediagate/common"
	"github.com/artloom/mediagate/common/config"
)

func GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data": gin.H{
			"version":        common.Version,
			"system_name":    config.SystemName,
			"server_address": config.ServerAddress,
			"store_enabled":  config.StoreEnabled,
		},
	})
}
