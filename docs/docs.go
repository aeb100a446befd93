// Package docs registers the Swagger document served at /swagger/*any.
// The document is maintained by hand and mirrors the swag annotations on
// the handlers; GET /items is a single operation covering both API versions.
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
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"$ref": "#/definitions/httpserver.probeResp"}}
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API and its database are ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"$ref": "#/definitions/httpserver.probeResp"}},
                    "503": {"description": "Database unavailable", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {"description": "API is alive", "schema": {"$ref": "#/definitions/httpserver.probeResp"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Exchanges the configured username/password for a bearer token valid one hour.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.loginReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.loginResp"}},
                    "401": {"description": "Missing or invalid credentials", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "429": {"description": "Too many login attempts", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            }
        },
        "/items": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "API v2: returns one page of items whose name contains q, with the total match count.\nAPI v1: ignores the query parameters and returns a plain array of every item (itemResp[]).",
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "List items",
                "parameters": [
                    {"type": "integer", "description": "Page number, 1-based (default: 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default: 10, max: 100)", "name": "size", "in": "query"},
                    {"type": "string", "description": "Name substring filter", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listPageResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Stores a new item. Every field is required and the id must be unused.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Add an item",
                "parameters": [
                    {"description": "Item data", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.StatusResp"}},
                    "400": {"description": "Missing fields or invalid value", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "401": {"description": "Unauthorized (API v2)", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "409": {"description": "Item exists", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            }
        },
        "/items/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Replaces every field of an existing item except its id.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Update an item",
                "parameters": [
                    {"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true},
                    {"description": "New field values", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.updateReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.StatusResp"}},
                    "400": {"description": "Missing fields or invalid value", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "401": {"description": "Unauthorized (API v2)", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Permanently removes an item by ID.",
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Delete an item",
                "parameters": [
                    {"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.StatusResp"}},
                    "400": {"description": "Invalid id", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "401": {"description": "Unauthorized (API v2)", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            }
        }
    },
    "definitions": {
        "http.createReq": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "quantity": {"type": "integer"},
                "release_year": {"type": "integer"}
            }
        },
        "http.updateReq": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "price": {"type": "number"},
                "quantity": {"type": "integer"},
                "release_year": {"type": "integer"}
            }
        },
        "http.itemResp": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "quantity": {"type": "integer"},
                "release_year": {"type": "integer"}
            }
        },
        "http.listPageResp": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/http.itemResp"}},
                "page": {"type": "integer"},
                "size": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "http.loginReq": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "http.loginResp": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expires_at": {"type": "string"}
            }
        },
        "httpserver.probeResp": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "service": {"type": "string"},
                "version": {"type": "string"},
                "api_version": {"type": "integer"}
            }
        },
        "response.ErrorResp": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "response.StatusResp": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "2",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Inventory Service API",
	Description:      "CRUD over stock items with optional JWT-protected, paginated variant.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
