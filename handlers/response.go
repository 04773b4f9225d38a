package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nahom-lulseged/gursha-backend/config"
)

// APIResponse is the envelope used by the order, user and delivery
// endpoints. Food and hotel CRUD return bare entities instead.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, APIResponse{Success: true, Message: message, Data: data})
}

// respondError echoes the underlying error text only when DEBUG_ERRORS is on.
func respondError(c *gin.Context, status int, message string, err error) {
	resp := APIResponse{Success: false, Message: message}
	if err != nil && config.DebugErrors {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}
