package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newErrorRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger(), ErrorHandler())
	router.GET("/thing", handler)
	return router
}

func serveError(t *testing.T, handler gin.HandlerFunc) (int, models.APIError) {
	t.Helper()
	w := httptest.NewRecorder()
	newErrorRouter(handler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/thing", nil))

	var body models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return w.Code, body
}

func TestErrorHandlerNotFound(t *testing.T) {
	testCases := []struct {
		meta    interface{}
		code    string
		message string
	}{
		{meta: models.ErrRestaurantNotFound, code: models.ErrRestaurantNotFound, message: "Restaurant not found"},
		{meta: models.ErrPizzaNotFound, code: models.ErrPizzaNotFound, message: "Pizza not found"},
		{meta: models.ErrRestaurantPizzaNotFound, code: models.ErrRestaurantPizzaNotFound, message: "RestaurantPizza not found"},
		{meta: nil, code: models.ErrNotFound, message: "Resource not found"},
	}

	for _, tt := range testCases {
		t.Run(tt.code, func(t *testing.T) {
			status, body := serveError(t, func(c *gin.Context) {
				_ = c.Error(fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound)).SetMeta(tt.meta)
			})

			assert.Equal(t, http.StatusNotFound, status)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestErrorHandlerValidationError(t *testing.T) {
	status, body := serveError(t, func(c *gin.Context) {
		_ = c.Error(models.ErrInvalidPrice)
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, models.ErrValidationFailed, body.Code)
	assert.Equal(t, "Price must be between 1 and 30", body.Message)
	assert.Equal(t, "price", body.Details["field"])
}

func TestErrorHandlerBindError(t *testing.T) {
	status, body := serveError(t, func(c *gin.Context) {
		_ = c.Error(errors.New("unexpected EOF")).SetType(gin.ErrorTypeBind)
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, models.ErrValidationFailed, body.Code)
	assert.Equal(t, "Invalid request body", body.Message)
	assert.Equal(t, "unexpected EOF", body.Details["reason"])
}

func TestErrorHandlerInternalError(t *testing.T) {
	status, body := serveError(t, func(c *gin.Context) {
		_ = c.Error(errors.New("database is locked"))
	})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, models.ErrInternalServer, body.Code)
	assert.NotContains(t, body.Message, "locked")
}

func TestErrorHandlerKeepsWrittenResponse(t *testing.T) {
	status, body := serveError(t, func(c *gin.Context) {
		_ = c.Error(errors.New("already handled"))
		c.JSON(http.StatusConflict, models.NewAPIError(models.ErrBadRequest, "handled here"))
	})

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "handled here", body.Message)
}

func TestErrorHandlerWithoutErrors(t *testing.T) {
	router := newErrorRouter(func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/thing", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
