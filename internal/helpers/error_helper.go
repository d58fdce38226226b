package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RenderNotFound renders the 404 page and halts the request.
func RenderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "errors/404.html", gin.H{})
	c.Abort()
}

// RenderServerError renders the generic 500 page and halts the request.
func RenderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
	c.Abort()
}
