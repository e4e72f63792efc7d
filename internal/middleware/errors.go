package middleware

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var notFoundMessages = map[string]string{
	models.ErrRestaurantNotFound:      "Restaurant not found",
	models.ErrPizzaNotFound:           "Pizza not found",
	models.ErrRestaurantPizzaNotFound: "RestaurantPizza not found",
}

// ErrorHandler answers for handlers that recorded an error with c.Error and wrote nothing.
// A not found error takes its code from the error's Meta, e.g.
//
//	_ = c.Error(err).SetMeta(models.ErrPizzaNotFound)
//
// Binding failures are recorded with gin.ErrorTypeBind.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		status, body := translate(c.Errors.Last())
		c.AbortWithStatusJSON(status, body)
	}
}

func translate(ginErr *gin.Error) (int, models.APIError) {
	if ginErr.IsType(gin.ErrorTypeBind) {
		return http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Invalid request body",
			map[string]interface{}{"reason": ginErr.Err.Error()})
	}

	var validationErr *models.ValidationError
	if errors.As(ginErr.Err, &validationErr) {
		return http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, validationErr.Message,
			map[string]interface{}{"field": validationErr.Field})
	}

	if errors.Is(ginErr.Err, gorm.ErrRecordNotFound) {
		code, _ := ginErr.Meta.(string)
		message, ok := notFoundMessages[code]
		if !ok {
			code, message = models.ErrNotFound, "Resource not found"
		}
		return http.StatusNotFound, models.NewAPIError(code, message)
	}

	return http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error")
}
