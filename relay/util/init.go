package util

import (
	"net/http"
	"time"

	"github.com/artloom/mediagate/common/config"
	"github.com/artloom/mediagate/common/logger"
	"github.com/artloom/mediagate/service"
)

var HTTPClient *http.Client
var ImpatientHTTPClient *http.Client

func init() {
	if config.RelayProxy != "" {
		client, err := service.NewProxyHttpClient(config.RelayProxy)
		if err != nil {
			logger.FatalLog("failed to initialize relay proxy client: " + err.Error())
		}
		HTTPClient = client
	} else if config.RelayTimeout == 0 {
		HTTPClient = &http.Client{}
	} else {
		HTTPClient = &http.Client{
			Timeout: time.Duration(config.RelayTimeout) * time.Second,
		}
	}

	ImpatientHTTPClient = &http.Client{
		Timeout: 5 * time.Second,
	}
}
