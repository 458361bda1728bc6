package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/artloom/mediagate/common"
	"github.com/artloom/mediagate/common/config"
	"github.com/artloom/mediagate/common/logger"
	"github.com/artloom/mediagate/middleware"
	"github.com/artloom/mediagate/model"
	"github.com/artloom/mediagate/router"
)

func main() {
	_ = godotenv.Load()
	common.Init()
	logger.SetupLogger()
	logger.SysLog(fmt.Sprintf("%s %s started", config.SystemName, common.Version))

	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.DebugEnabled {
		logger.SysLog("running in debug mode")
	}

	db, err := model.InitDB("SQL_DSN")
	if err != nil {
		logger.FatalLog("failed to initialize database: " + err.Error())
	}
	model.DB = db
	defer func() {
		if err := model.CloseDB(); err != nil {
			logger.FatalLog("failed to close database: " + err.Error())
		}
	}()

	if err := model.CreateRootTokenIfNeed(); err != nil {
		logger.FatalLog("failed to create root token: " + err.Error())
	}

	if err := common.InitRedisClient(); err != nil {
		logger.FatalLog("failed to initialize redis: " + err.Error())
	}

	server := gin.New()
	server.Use(middleware.RelayPanicRecover())
	server.Use(middleware.RequestId())
	middleware.SetUpLogger(server)

	router.SetRouter(server)

	port := os.Getenv("PORT")
	if port == "" {
		port = strconv.Itoa(*common.Port)
	}
	logger.SysLog("server listening on port " + port)
	if err := server.Run(":" + port); err != nil {
		logger.FatalLog("failed to start HTTP server: " + err.Error())
	}
}
