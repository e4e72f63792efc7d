package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests for restaurant pizza prices
type RestaurantPizzaController interface {
	GetAllRestaurantPizzas(c *gin.Context)
	GetRestaurantPizzaByID(c *gin.Context)
	CreateRestaurantPizza(c *gin.Context)
	UpdateRestaurantPizza(c *gin.Context)
	DeleteRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

type createRestaurantPizzaRequest struct {
	Price        *int `json:"price" binding:"required"`
	RestaurantID uint `json:"restaurant_id" binding:"required"`
	PizzaID      uint `json:"pizza_id" binding:"required"`
}

type updateRestaurantPizzaRequest struct {
	Price *int `json:"price" binding:"required"`
}

// GetAllRestaurantPizzas godoc
// @Summary Get all restaurant pizzas
// @Tags restaurant_pizzas
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} models.APIError
// @Router /restaurant_pizzas [get]
func (c *restaurantPizzaController) GetAllRestaurantPizzas(ctx *gin.Context) {
	restaurantPizzas, err := c.service.GetAllRestaurantPizzas()
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	out := make([]map[string]interface{}, 0, len(restaurantPizzas))
	for i := range restaurantPizzas {
		out = append(out, restaurantPizzas[i].ToMap())
	}
	ctx.JSON(http.StatusOK, out)
}

// GetRestaurantPizzaByID godoc
// @Summary Get restaurant pizza by ID
// @Tags restaurant_pizzas
// @Produce json
// @Param id path int true "RestaurantPizza ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /restaurant_pizzas/{id} [get]
func (c *restaurantPizzaController) GetRestaurantPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	restaurantPizza, err := c.service.GetRestaurantPizzaByID(id)
	if err != nil {
		_ = ctx.Error(err).SetMeta(models.ErrRestaurantPizzaNotFound)
		return
	}
	ctx.JSON(http.StatusOK, restaurantPizza.ToMap())
}

// CreateRestaurantPizza godoc
// @Summary Sell a pizza at a restaurant
// @Description Price must be between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body createRestaurantPizzaRequest true "Price and parents"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req createRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	restaurantPizza, err := c.service.CreateRestaurantPizza(*req.Price, req.RestaurantID, req.PizzaID)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusCreated, restaurantPizza.ToMap())
}

// UpdateRestaurantPizza godoc
// @Summary Change the price of a restaurant pizza
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param id path int true "RestaurantPizza ID"
// @Param restaurant_pizza body updateRestaurantPizzaRequest true "New price"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /restaurant_pizzas/{id} [patch]
func (c *restaurantPizzaController) UpdateRestaurantPizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req updateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	restaurantPizza, err := c.service.UpdatePrice(id, *req.Price)
	if err != nil {
		_ = ctx.Error(err).SetMeta(models.ErrRestaurantPizzaNotFound)
		return
	}
	ctx.JSON(http.StatusOK, restaurantPizza.ToMap())
}

// DeleteRestaurantPizza godoc
// @Summary Delete a restaurant pizza
// @Tags restaurant_pizzas
// @Param id path int true "RestaurantPizza ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /restaurant_pizzas/{id} [delete]
func (c *restaurantPizzaController) DeleteRestaurantPizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteRestaurantPizza(id); err != nil {
		_ = ctx.Error(err).SetMeta(models.ErrRestaurantPizzaNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
