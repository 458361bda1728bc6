package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/artloom/mediagate/model"
)

// TokenAuth validates the Bearer token and stashes its identity for the
// relay handlers and the generation records.
func TokenAuth() func(c *gin.Context) {
	return func(c *gin.Context) {
		key := c.Request.Header.Get("Authorization")
		key = strings.TrimSpace(strings.TrimPrefix(key, "Bearer"))

		token, err := model.ValidateToken(key)
		if err != nil {
			abortWithMessage(c, http.StatusUnauthorized, err.Error())
			return
		}
		c.Set("token_id", token.Id)
		c.Set("token_name", token.Name)
		c.Next()
	}
}
