package middleware

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artloom/mediagate/common/config"
	"github.com/artloom/mediagate/common/logger"
)

// SetUpLogger installs the access logger, emitting the same JSON line
// shape as the app logger so both streams can be filtered together.
func SetUpLogger(server *gin.Engine) {
	server.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		var requestId string
		if param.Keys != nil {
			requestId, _ = param.Keys[logger.RequestIdKey].(string)
		}
		entry := logger.LogEntry{
			Ts:        param.TimeStamp.Format(time.RFC3339Nano),
			Level:     "info",
			RequestId: requestId,
			Msg: fmt.Sprintf("%s %s %d %v %s",
				param.Method, param.Path, param.StatusCode, param.Latency, param.ClientIP),
			Service:  config.ServiceName,
			Instance: config.InstanceId,
		}
		data, err := json.Marshal(entry)
		if err != nil {
			return ""
		}
		return string(data) + "\n"
	}))
}
