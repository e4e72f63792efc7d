package controllers

import (
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter, answering 400 when it is not a positive integer
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid ID format",
			map[string]interface{}{"id": ctx.Param("id")}))
		return 0, false
	}
	return uint(id), true
}

func summaries(restaurants []models.Restaurant) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(restaurants))
	for i := range restaurants {
		out = append(out, restaurants[i].Summary())
	}
	return out
}
