package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mertkaya/platformhub/internal/middleware"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index handles the home page
func (h *HomeHandler) Index(c *gin.Context) {
	session := middleware.GetSession(c)

	data := gin.H{
		"Title": "PlatformHub",
		"User":  session,
	}

	c.HTML(http.StatusOK, "index", data)
}
