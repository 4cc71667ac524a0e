package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
)

// parseIDParam reads a numeric path parameter. On failure it writes
// the 400 response itself and returns false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Invalid ID"))
		return 0, false
	}
	return id, true
}

// queryInt64 reads an optional numeric query parameter. On failure it
// writes the 400 response itself and returns ok=false.
func queryInt64(ctx *gin.Context, name string) (value *int64, ok bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Invalid query parameter: "+name))
		return nil, false
	}
	return &parsed, true
}

// queryInt is queryInt64 for int-typed filters
func queryInt(ctx *gin.Context, name string) (value *int, ok bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Invalid query parameter: "+name))
		return nil, false
	}
	return &parsed, true
}
