// Package docs holds the Swagger document served at /swagger.
//
// The document is maintained by hand in the layout swag init produces from the
// annotations in cmd and internal/controllers. Keep the two in step when a route changes.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Check if the service is running",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/restaurants": {
            "get": {
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Get all restaurants",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Create a restaurant",
                "parameters": [
                    {"description": "Restaurant", "name": "restaurant", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.createRestaurantRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIError"}}
                }
            }
        },
        "/restaurants/{id}": {
            "get": {
                "description": "Get a restaurant with the pizzas it sells",
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Get restaurant by ID",
                "parameters": [{"type": "integer", "description": "Restaurant ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.APIError"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Update a restaurant",
                "parameters": [
                    {"type": "integer", "description": "Restaurant ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "restaurant", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.updateRestaurantRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.APIError"}}
                }
            },
            "delete": {
                "description": "Deletes the restaurant and every price it set for a pizza",
                "tags": ["restaurants"],
                "summary": "Delete a restaurant",
                "parameters": [{"type": "integer", "description": "Restaurant ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.APIError"}}
                }
            }
        },
        "/pizzas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pizzas"],
                "summary": "Get all pizzas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Pizza"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pizzas"],
                "summary": "Create a new pizza",
                "parameters": [
                    {"description": "Pizza", "name": "pizza", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.pizzaRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Pizza"}}
                }
            }
        },
        "/pizzas/{id}": {
            "get": {
                "description": "Get a single pizza and the restaurants selling it",
                "produces": ["application/json"],
                "tags": ["pizzas"],
                "summary": "Get pizza by ID",
                "parameters": [{"type": "integer", "description": "Pizza ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.APIError"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pizzas"],
                "summary": "Update a pizza",
                "parameters": [
                    {"type": "integer", "description": "Pizza ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "pizza", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.pizzaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Pizza"}}
                }
            },
            "delete": {
                "description": "Deletes the pizza and every restaurant price for it",
                "tags": ["pizzas"],
                "summary": "Delete a pizza",
                "parameters": [{"type": "integer", "description": "Pizza ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/restaurant_pizzas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["restaurant_pizzas"],
                "summary": "Get all restaurant pizzas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            },
            "post": {
                "description": "Price must be between 1 and 30",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["restaurant_pizzas"],
                "summary": "Sell a pizza at a restaurant",
                "parameters": [
                    {"description": "Price and parents", "name": "restaurant_pizza", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.createRestaurantPizzaRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIError"}}
                }
            }
        },
        "/restaurant_pizzas/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["restaurant_pizzas"],
                "summary": "Get restaurant pizza by ID",
                "parameters": [{"type": "integer", "description": "RestaurantPizza ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["restaurant_pizzas"],
                "summary": "Change the price of a restaurant pizza",
                "parameters": [
                    {"type": "integer", "description": "RestaurantPizza ID", "name": "id", "in": "path", "required": true},
                    {"description": "New price", "name": "restaurant_pizza", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.updateRestaurantPizzaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            },
            "delete": {
                "tags": ["restaurant_pizzas"],
                "summary": "Delete a restaurant pizza",
                "parameters": [{"type": "integer", "description": "RestaurantPizza ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        }
    },
    "definitions": {
        "controllers.createRestaurantRequest": {
            "type": "object",
            "required": ["address", "name"],
            "properties": {"address": {"type": "string"}, "name": {"type": "string"}}
        },
        "controllers.updateRestaurantRequest": {
            "type": "object",
            "properties": {"address": {"type": "string"}, "name": {"type": "string"}}
        },
        "controllers.pizzaRequest": {
            "type": "object",
            "properties": {"ingredients": {"type": "string"}, "name": {"type": "string"}}
        },
        "controllers.createRestaurantPizzaRequest": {
            "type": "object",
            "required": ["pizza_id", "price", "restaurant_id"],
            "properties": {"pizza_id": {"type": "integer"}, "price": {"type": "integer"}, "restaurant_id": {"type": "integer"}}
        },
        "controllers.updateRestaurantPizzaRequest": {
            "type": "object",
            "required": ["price"],
            "properties": {"price": {"type": "integer"}}
        },
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true},
                "message": {"type": "string"}
            }
        },
        "models.Pizza": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "ingredients": {"type": "string"}, "name": {"type": "string", "x-nullable": true}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pizza Restaurants API",
	Description:      "Restaurants, pizzas and the prices restaurants charge for them. Every route is also served under /api/v1.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
