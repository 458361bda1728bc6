package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artloom/mediagate/common"
)

type modelRequest struct {
	Model string `json:"model" form:"model"`
}

// Distribute extracts the requested model early so routing metadata can be
// derived before the relay handler binds the full request.
func Distribute() func(c *gin.Context) {
	return func(c *gin.Context) {
		var request modelRequest
		if err := common.UnmarshalBodyReusable(c, &request); err != nil {
			abortWithMessage(c, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		if request.Model == "" {
			abortWithMessage(c, http.StatusBadRequest, "model is required")
			return
		}
		c.Set("original_model", request.Model)
		c.Next()
	}
}
