package server

import "github.com/gin-gonic/gin"

// apiError is the uniform error payload. Storage faults are deliberately
// generic: internal detail goes to the log, not the client.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondOK(c *gin.Context, body gin.H) {
	c.JSON(200, body)
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": apiError{Code: code, Message: message}})
}
