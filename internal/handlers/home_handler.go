package handlers

import (
	"net/http"

	"gigbook/internal/helpers"

	"github.com/gin-gonic/gin"
)

func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "pages/home.html", gin.H{
		"flashes": helpers.TakeFlashes(c),
	})
}
