package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// OpenAPISpec represents an OpenAPI 3.0 spec structure
type OpenAPISpec struct {
	OpenAPI    string                 `json:"openapi"`
	Info       map[string]interface{} `json:"info"`
	Servers    []Server               `json:"servers"`
	Paths      map[string]interface{} `json:"paths"`
	Components map[string]interface{} `json:"components,omitempty"`
}

// Server represents an OpenAPI 3.0 server
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// ServeOpenAPISpec serves the OpenAPI 3.0 document for the REST surface
func ServeOpenAPISpec(c echo.Context) error {
	spec := OpenAPISpec{
		OpenAPI: "3.0.3",
		Info: map[string]interface{}{
			"title":       "Wishlist API",
			"description": "Per-user wishlists of product items",
			"version":     "1.0.0",
		},
		Servers: []Server{
			{URL: "/api/v1", Description: "This server"},
		},
		Paths: map[string]interface{}{
			"/wishlists": map[string]interface{}{
				"get": operation("List all wishlists", response200("array of Wishlist")),
				"post": operationWithBody("Create a wishlist", "CreateWishlistRequest", map[string]interface{}{
					"201": responseRef("Wishlist"),
					"400": responseRef("ProblemDetails"),
					"404": responseRef("ProblemDetails"),
				}),
			},
			"/wishlists/{id}": map[string]interface{}{
				"get": withIDParam(operation("Get a wishlist by id", map[string]interface{}{
					"200": responseRef("Wishlist"),
					"404": responseRef("ProblemDetails"),
				})),
				"put": withIDParam(operationWithBody("Update a wishlist", "UpdateWishlistRequest", map[string]interface{}{
					"200": responseRef("Wishlist"),
					"400": responseRef("ProblemDetails"),
					"404": responseRef("ProblemDetails"),
				})),
				"delete": withIDParam(operation("Delete a wishlist (idempotent)", map[string]interface{}{
					"204": map[string]interface{}{"description": "Deleted"},
				})),
			},
			"/wishlists/{id}/default": map[string]interface{}{
				"patch": withIDParam(operation("Make the wishlist the user's default", map[string]interface{}{
					"200": responseRef("Wishlist"),
					"404": responseRef("ProblemDetails"),
				})),
			},
			"/wishlists/{id}/items": map[string]interface{}{
				"post": withIDParam(operationWithBody("Add an item to a wishlist", "AddItemRequest", map[string]interface{}{
					"200": responseRef("Wishlist"),
					"400": responseRef("ProblemDetails"),
					"404": responseRef("ProblemDetails"),
				})),
			},
			"/wishlists/{id}/items/{itemId}": map[string]interface{}{
				"delete": withPathParams(operation("Remove an item from a wishlist", map[string]interface{}{
					"200": responseRef("Wishlist"),
					"404": responseRef("ProblemDetails"),
				}), "id", "itemId"),
			},
			"/wishlists/move-items": map[string]interface{}{
				"post": operationWithBody("Move items between wishlists (all-or-nothing)", "MoveItemsRequest", map[string]interface{}{
					"200": responseRef("MoveItemsResponse"),
					"404": responseRef("ProblemDetails"),
				}),
			},
			"/users": map[string]interface{}{
				"get": operation("List all users", response200("array of User")),
				"post": operationWithBody("Register a user", "CreateUserRequest", map[string]interface{}{
					"201": responseRef("User"),
					"400": responseRef("ProblemDetails"),
				}),
			},
			"/users/{id}": map[string]interface{}{
				"get": withIDParam(operation("Get a user by id", map[string]interface{}{
					"200": responseRef("User"),
					"404": responseRef("ProblemDetails"),
				})),
			},
			"/users/{id}/wishlists": map[string]interface{}{
				"get": withIDParam(operation("List a user's wishlists", response200("array of Wishlist"))),
			},
		},
		Components: map[string]interface{}{
			"schemas": map[string]interface{}{
				"Wishlist": objectSchema(map[string]interface{}{
					"id":          stringProp(),
					"userId":      stringProp(),
					"name":        stringProp(),
					"description": stringProp(),
					"items":       map[string]interface{}{"type": "array", "items": ref("WishlistItem")},
					"isDefault":   map[string]interface{}{"type": "boolean", "default": false},
					"createdAt":   dateTimeProp(),
					"updatedAt":   dateTimeProp(),
				}),
				"WishlistItem": objectSchema(map[string]interface{}{
					"id":          stringProp(),
					"wishlistId":  stringProp(),
					"productId":   stringProp(),
					"productName": stringProp(),
					"productUrl":  stringProp(),
					"price":       stringProp(),
					"priority":    map[string]interface{}{"type": "string", "enum": []string{"LOW", "MEDIUM", "HIGH"}},
					"notes":       stringProp(),
					"currency":    map[string]interface{}{"type": "string", "default": "EUR"},
					"thumbnail":   map[string]interface{}{"type": "string", "default": ""},
					"addedAt":     dateTimeProp(),
				}),
				"User": objectSchema(map[string]interface{}{
					"id":        stringProp(),
					"email":     stringProp(),
					"name":      stringProp(),
					"createdAt": dateTimeProp(),
				}),
				"CreateUserRequest": objectSchema(map[string]interface{}{
					"email": stringProp(),
					"name":  stringProp(),
				}),
				"CreateWishlistRequest": objectSchema(map[string]interface{}{
					"userId":      stringProp(),
					"name":        stringProp(),
					"description": stringProp(),
					"isDefault":   map[string]interface{}{"type": "boolean", "default": false},
				}),
				"UpdateWishlistRequest": objectSchema(map[string]interface{}{
					"name":        stringProp(),
					"description": stringProp(),
					"isDefault":   map[string]interface{}{"type": "boolean", "default": false},
				}),
				"AddItemRequest": objectSchema(map[string]interface{}{
					"productId":   stringProp(),
					"productName": stringProp(),
					"productUrl":  stringProp(),
					"price":       map[string]interface{}{"type": "number", "minimum": 0},
					"priority":    map[string]interface{}{"type": "string", "enum": []string{"LOW", "MEDIUM", "HIGH"}},
					"notes":       stringProp(),
					"currency":    map[string]interface{}{"type": "string", "default": "EUR"},
					"thumbnail":   map[string]interface{}{"type": "string", "default": ""},
				}),
				"MoveItemsRequest": objectSchema(map[string]interface{}{
					"sourceListId":      stringProp(),
					"destinationListId": stringProp(),
					"itemIds":           map[string]interface{}{"type": "array", "items": stringProp()},
				}),
				"MoveItemsResponse": objectSchema(map[string]interface{}{
					"source":      ref("Wishlist"),
					"destination": ref("Wishlist"),
				}),
				"ProblemDetails": objectSchema(map[string]interface{}{
					"type":     stringProp(),
					"title":    stringProp(),
					"status":   map[string]interface{}{"type": "integer"},
					"detail":   stringProp(),
					"instance": stringProp(),
				}),
			},
		},
	}
	return c.JSON(http.StatusOK, spec)
}

func operation(summary string, responses map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"summary":   summary,
		"responses": responses,
	}
}

func operationWithBody(summary, schema string, responses map[string]interface{}) map[string]interface{} {
	op := operation(summary, responses)
	op["requestBody"] = map[string]interface{}{
		"required": true,
		"content": map[string]interface{}{
			"application/json": map[string]interface{}{"schema": ref(schema)},
		},
	}
	return op
}

func withIDParam(op map[string]interface{}) map[string]interface{} {
	return withPathParams(op, "id")
}

func withPathParams(op map[string]interface{}, names ...string) map[string]interface{} {
	params := make([]map[string]interface{}, len(names))
	for i, name := range names {
		params[i] = map[string]interface{}{"name": name, "in": "path", "required": true, "schema": stringProp()}
	}
	op["parameters"] = params
	return op
}

func response200(description string) map[string]interface{} {
	return map[string]interface{}{
		"200": map[string]interface{}{"description": description},
	}
}

func responseRef(schema string) map[string]interface{} {
	return map[string]interface{}{
		"description": schema,
		"content": map[string]interface{}{
			"application/json": map[string]interface{}{"schema": ref(schema)},
		},
	}
}

func ref(schema string) map[string]interface{} {
	return map[string]interface{}{"$ref": "#/components/schemas/" + schema}
}

func objectSchema(properties map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"type": "object", "properties": properties}
}

func stringProp() map[string]interface{} {
	return map[string]interface{}{"type": "string"}
}

func dateTimeProp() map[string]interface{} {
	return map[string]interface{}{"type": "string", "format": "date-time"}
}
