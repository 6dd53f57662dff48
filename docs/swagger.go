// Package docs holds the API description served under /swagger.
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
        "/boards/{id}/snapshot": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Current board snapshot",
                "parameters": [{"type": "string", "description": "Board ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SnapshotResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/boards/{id}/drop": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Apply a drag and drop event",
                "parameters": [
                    {"type": "string", "description": "Board ID", "name": "id", "in": "path", "required": true},
                    {"description": "Drop event", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/reorder.DropEvent"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DropResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.DropResponse"}}
                }
            }
        },
        "/boards/{id}/columns": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Columns"],
                "summary": "List board columns",
                "parameters": [{"type": "string", "description": "Board ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.ColumnResponse"}}}}
            }
        },
        "/columns/{id}/order": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Columns"],
                "summary": "Set column order",
                "parameters": [
                    {"type": "string", "description": "Column ID", "name": "id", "in": "path", "required": true},
                    {"description": "New order", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SetColumnOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ColumnResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/projects/{id}/issues": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Issues"],
                "summary": "List project issues",
                "parameters": [{"type": "string", "description": "Project ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.IssueResponse"}}}}
            }
        },
        "/issues/{id}/placement": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Issues"],
                "summary": "Set issue order, column and status",
                "parameters": [
                    {"type": "string", "description": "Issue ID", "name": "id", "in": "path", "required": true},
                    {"description": "Placement", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SetPlacementRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.IssueResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.ColumnResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "board_id": {"type": "string"}, "name": {"type": "string"},
                "order": {"type": "integer"}, "wip_limit": {"type": "integer"}, "status": {"type": "string"}
            }
        },
        "handler.IssueResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "project_id": {"type": "string"}, "column_id": {"type": "string"},
                "order": {"type": "integer"}, "status": {"type": "string"}, "title": {"type": "string"}
            }
        },
        "handler.SnapshotResponse": {
            "type": "object",
            "properties": {
                "columns": {"type": "array", "items": {"$ref": "#/definitions/handler.ColumnResponse"}},
                "issues": {"type": "array", "items": {"$ref": "#/definitions/handler.IssueResponse"}}
            }
        },
        "handler.DropResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"}, "noop": {"type": "boolean"}, "message": {"type": "string"},
                "columns": {"type": "array", "items": {"$ref": "#/definitions/handler.ColumnResponse"}},
                "issues": {"type": "array", "items": {"$ref": "#/definitions/handler.IssueResponse"}}
            }
        },
        "handler.SetColumnOrderRequest": {"type": "object", "required": ["order"], "properties": {"order": {"type": "integer", "minimum": 0}}},
        "handler.SetPlacementRequest": {
            "type": "object",
            "required": ["order"],
            "properties": {"order": {"type": "integer", "minimum": 0}, "column_id": {"type": "string"}, "status": {"type": "string"}}
        },
        "reorder.Position": {"type": "object", "properties": {"droppableId": {"type": "string"}, "index": {"type": "integer"}}},
        "reorder.DropEvent": {
            "type": "object",
            "required": ["type"],
            "properties": {
                "type": {"type": "string", "enum": ["COLUMN", "ISSUE"]},
                "draggableId": {"type": "string"},
                "source": {"$ref": "#/definitions/reorder.Position"},
                "destination": {"$ref": "#/definitions/reorder.Position"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"description": "Type \"Bearer\" followed by a space and JWT token.", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Kanbanflow API",
	Description:      "Board sessions for drag and drop ordering of columns and issues.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
