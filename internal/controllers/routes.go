package controllers

import (
	"github.com/gin-gonic/gin"
)

// Controllers groups the handlers mounted by RegisterRoutes
type Controllers struct {
	Restaurants      RestaurantController
	Pizzas           PizzaController
	RestaurantPizzas RestaurantPizzaController
}

// RegisterRoutes mounts the resource routes on the given group.
// Handlers record failures with c.Error and leave the response to middleware.ErrorHandler.
func RegisterRoutes(group *gin.RouterGroup, c Controllers) {
	restaurants := group.Group("/restaurants")
	{
		restaurants.GET("", c.Restaurants.GetAllRestaurants)
		restaurants.GET("/:id", c.Restaurants.GetRestaurantByID)
		restaurants.POST("", c.Restaurants.CreateRestaurant)
		restaurants.PATCH("/:id", c.Restaurants.UpdateRestaurant)
		restaurants.DELETE("/:id", c.Restaurants.DeleteRestaurant)
	}

	pizzas := group.Group("/pizzas")
	{
		pizzas.GET("", c.Pizzas.GetAllPizzas)
		pizzas.GET("/:id", c.Pizzas.GetPizzaByID)
		pizzas.POST("", c.Pizzas.CreatePizza)
		pizzas.PATCH("/:id", c.Pizzas.UpdatePizza)
		pizzas.DELETE("/:id", c.Pizzas.DeletePizza)
	}

	restaurantPizzas := group.Group("/restaurant_pizzas")
	{
		restaurantPizzas.GET("", c.RestaurantPizzas.GetAllRestaurantPizzas)
		restaurantPizzas.GET("/:id", c.RestaurantPizzas.GetRestaurantPizzaByID)
		restaurantPizzas.POST("", c.RestaurantPizzas.CreateRestaurantPizza)
		restaurantPizzas.PATCH("/:id", c.RestaurantPizzas.UpdateRestaurantPizza)
		restaurantPizzas.DELETE("/:id", c.RestaurantPizzas.DeleteRestaurantPizza)
	}
}
