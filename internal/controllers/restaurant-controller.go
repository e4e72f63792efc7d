package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	GetAllRestaurants(c *gin.Context)
	GetRestaurantByID(c *gin.Context)
	CreateRestaurant(c *gin.Context)
	UpdateRestaurant(c *gin.Context)
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

type createRestaurantRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type updateRestaurantRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1"`
	Address *string `json:"address" binding:"omitempty,min=1"`
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Tags restaurants
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} models.APIError
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants()
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, summaries(restaurants))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant with the pizzas it sells
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	restaurant, err := c.service.GetRestaurantByID(id)
	if err != nil {
		_ = ctx.Error(err).SetMeta(models.ErrRestaurantNotFound)
		return
	}
	ctx.JSON(http.StatusOK, restaurant.ToMap())
}

// CreateRestaurant godoc
// @Summary Create a restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param restaurant body createRestaurantRequest true "Restaurant"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /restaurants [post]
func (c *restaurantController) CreateRestaurant(ctx *gin.Context) {
	var req createRestaurantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	restaurant, err := c.service.CreateRestaurant(models.Restaurant{Name: req.Name, Address: req.Address})
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusCreated, restaurant.Summary())
}

// UpdateRestaurant godoc
// @Summary Update a restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param restaurant body updateRestaurantRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /restaurants/{id} [patch]
func (c *restaurantController) UpdateRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req updateRestaurantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	existing, err := c.service.GetRestaurantByID(id)
	if err != nil {
		_ = ctx.Error(err).SetMeta(models.ErrRestaurantNotFound)
		return
	}

	restaurant := models.Restaurant{ID: existing.ID, Name: existing.Name, Address: existing.Address}
	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}

	updated, err := c.service.UpdateRestaurant(restaurant)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, updated.Summary())
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Deletes the restaurant and every price it set for a pizza
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteRestaurant(id); err != nil {
		_ = ctx.Error(err).SetMeta(models.ErrRestaurantNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
