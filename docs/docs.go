// Package docs registers the Swagger specification served at /swagger/*any.
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
        "/api/v1/inventories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "List inventories",
                "parameters": [
                    {"type": "integer", "description": "Page size (default: 20)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Page offset (default: 0)", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "Create an inventory",
                "parameters": [
                    {"description": "Inventory data", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/createReq"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/v1/inventories/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "Get inventory detail",
                "description": "Inventories live in a bounded in-memory store; once inventory.cache_size is reached the least recently used one is evicted and returns 404.",
                "parameters": [{"type": "string", "description": "Inventory ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "Delete an inventory",
                "parameters": [{"type": "string", "description": "Inventory ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/inventories/{id}/stock": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "Stock shirts",
                "parameters": [
                    {"type": "string", "description": "Inventory ID", "name": "id", "in": "path", "required": true},
                    {"description": "Shirts to add", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/stockReq"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/inventories/{id}/giveaway": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "Pick a giveaway shirt",
                "description": "Returns the preferred color when given, otherwise the inventory's fallback choice. Stock is not changed. Evicted inventories return 404.",
                "parameters": [
                    {"type": "string", "description": "Inventory ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Preferred color (red/blue, case-insensitive)", "name": "preference", "in": "query"},
                    {"enum": ["most_stocked", "most_recent"], "type": "string", "description": "Fallback override", "name": "strategy", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict - inventory is empty"}}
            }
        },
        "/api/v1/display/mode": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Display"],
                "summary": "Resolve display mode",
                "parameters": [
                    {"type": "string", "description": "Preferred mode (light/dark, case-insensitive)", "name": "preference", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "OK"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "OK"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "OK"}}}},
        "/metrics": {"get": {"produces": ["text/plain"], "tags": ["Health"], "summary": "Prometheus metrics", "responses": {"200": {"description": "OK"}}}}
    },
    "definitions": {
        "createReq": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "shirts": {"type": "array", "items": {"type": "string", "enum": ["red", "blue"]}},
                "strategy": {"type": "string", "enum": ["most_stocked", "most_recent"]}
            }
        },
        "stockReq": {
            "type": "object",
            "required": ["shirts"],
            "properties": {
                "shirts": {"type": "array", "items": {"type": "string", "enum": ["red", "blue"]}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Preference Service API",
	Description:      "Resolves giveaway shirt colors and display modes from explicit preferences or computed defaults.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
