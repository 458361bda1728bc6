package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/artloom/mediagate/model"
)

const generationsPerPage = 20

// ListGenerations pages through the caller's own generation history,
// newest first.
func ListGenerations(c *gin.Context) {
	p, _ := strconv.Atoi(c.Query("p"))
	if p < 0 {
		p = 0
	}
	generations, err := model.GetGenerationsByTokenName(c.GetString("token_name"), p*generationsPerPage, generationsPerPage)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data":    generations,
	})
}
