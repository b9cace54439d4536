package handler

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"moviehub/internal/apperr"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope: {success, message?, data?}.
// Internal errors get logged server-side with their cause; the client only
// sees the generic message unless development mode is on.

type responder struct {
	logger      *slog.Logger
	development bool
}

func newResponder(logger *slog.Logger, development bool) *responder {
	return &responder{logger: logger, development: development}
}

func (r *responder) ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (r *responder) created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func (r *responder) message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func (r *responder) fail(c *gin.Context, err error) {
	appErr := apperr.From(err)
	if appErr.Status == http.StatusInternalServerError {
		r.logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
	}

	body := gin.H{"success": false, "message": appErr.Message}
	if r.development && appErr.Status == http.StatusInternalServerError {
		body["stack"] = string(debug.Stack())
	}
	c.JSON(appErr.Status, body)
}

func (r *responder) badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

func (r *responder) unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
}
