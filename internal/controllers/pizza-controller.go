package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza updates an existing pizza
	UpdatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

type pizzaRequest struct {
	Name        *string `json:"name"`
	Ingredients *string `json:"ingredients"`
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.Pizza
// @Failure 500 {object} models.APIError
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas()
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	out := make([]map[string]interface{}, 0, len(pizzas))
	for i := range pizzas {
		out = append(out, pizzas[i].ToMap())
	}
	ctx.JSON(http.StatusOK, out)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza and the restaurants selling it
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	pizza, err := c.service.GetPizzaByID(id)
	if err != nil {
		_ = ctx.Error(err).SetMeta(models.ErrPizzaNotFound)
		return
	}

	out := pizza.ToMap()
	out["restaurants"] = summaries(pizza.Restaurants())
	ctx.JSON(http.StatusOK, out)
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body pizzaRequest true "Pizza"
// @Success 201 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /pizzas [post]
func (c *pizzaController) CreatePizza(ctx *gin.Context) {
	var req pizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	var pizza models.Pizza
	applyPizzaRequest(&pizza, req)

	created, err := c.service.CreatePizza(pizza)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusCreated, created.ToMap())
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param pizza body pizzaRequest true "Fields to change"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /pizzas/{id} [patch]
func (c *pizzaController) UpdatePizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req pizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	existing, err := c.service.GetPizzaByID(id)
	if err != nil {
		_ = ctx.Error(err).SetMeta(models.ErrPizzaNotFound)
		return
	}

	pizza := models.Pizza{ID: existing.ID, Name: existing.Name, Ingredients: existing.Ingredients}
	applyPizzaRequest(&pizza, req)

	updated, err := c.service.UpdatePizza(pizza)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.JSON(http.StatusOK, updated.ToMap())
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Deletes the pizza and every restaurant price for it
// @Tags pizzas
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /pizzas/{id} [delete]
func (c *pizzaController) DeletePizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeletePizza(id); err != nil {
		_ = ctx.Error(err).SetMeta(models.ErrPizzaNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func applyPizzaRequest(pizza *models.Pizza, req pizzaRequest) {
	if req.Name != nil {
		pizza.Name = req.Name
	}
	if req.Ingredients != nil {
		pizza.Ingredients = *req.Ingredients
	}
}
