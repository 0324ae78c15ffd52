package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// uintParam parses a numeric path parameter, answering 400 itself when the
// value is malformed.
func uintParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}

	return uint(value), true
}

// pageQuery reads the 1-based page query parameter, defaulting to 1.
func pageQuery(ctx *gin.Context) int {
	raw := ctx.DefaultQuery("page", "1")

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}

	return page
}

// uintQuery reads an optional numeric query parameter; zero means absent.
func uintQuery(ctx *gin.Context, name string) uint {
	raw := ctx.Query(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}

	return uint(value)
}
