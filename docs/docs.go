// Package docs registers the OpenAPI document served under /swagger/.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Search events",
                "parameters": [
                    {"type": "string", "description": "Free-text match on the event name", "name": "query", "in": "query"},
                    {"type": "string", "description": "Comma-separated tag names; results carry all of them", "name": "tags", "in": "query"},
                    {"type": "string", "description": "Name filter", "name": "name", "in": "query"},
                    {"type": "string", "description": "Earliest start time (RFC 3339 or YYYY-MM-DD)", "name": "from", "in": "query"},
                    {"type": "string", "description": "Latest start time (RFC 3339 or YYYY-MM-DD)", "name": "to", "in": "query"},
                    {"type": "string", "description": "draft, published or cancelled", "name": "status", "in": "query"},
                    {"type": "string", "description": "start, posted, updated, alpha_asc or alpha_desc", "name": "sort", "in": "query"},
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 3, max 100)", "name": "pageSize", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.SearchEventsSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create an event",
                "parameters": [
                    {"description": "Event data", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.EventIDSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found (organization)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/events/{eventID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get an event",
                "parameters": [{"type": "string", "description": "Event ID (UUID)", "name": "eventID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.GetEventSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Replace an event",
                "parameters": [
                    {"type": "string", "description": "Event ID (UUID)", "name": "eventID", "in": "path", "required": true},
                    {"description": "Event data", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateEventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventIDSuccessResponse"}},
                    "401": {"description": "error.code: unauthorized (missing token or not the contributor)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Delete an event",
                "parameters": [{"type": "string", "description": "Event ID (UUID)", "name": "eventID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventIDSuccessResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/events/{eventID}/save": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["saved-events"],
                "summary": "Save an event",
                "parameters": [{"type": "string", "description": "Event ID (UUID)", "name": "eventID", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.SaveEventSuccessResponse"}},
                    "400": {"description": "error.code: bad_request or already_saved", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["saved-events"],
                "summary": "Unsave an event",
                "parameters": [{"type": "string", "description": "Event ID (UUID)", "name": "eventID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request or not_saved", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/users/me/events": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List my events",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.SearchEventsSuccessResponse"}}}
            }
        },
        "/users/me/saved-events": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List my saved events",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.SearchEventsSuccessResponse"}}}
            }
        },
        "/tags": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tags"],
                "summary": "List tags",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListTagsSuccessResponse"}}}
            }
        }
    },
    "definitions": {
        "helpers.APIError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {"data": {}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "domain.Tag": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"},
                "description": {"type": "string"}, "official": {"type": "boolean"}
            }
        },
        "domain.SavedEvent": {
            "type": "object",
            "properties": {"user_id": {"type": "string"}, "event_id": {"type": "string"}, "created_at": {"type": "string"}}
        },
        "domain.EventRow": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "description": {"type": "string"},
                "location": {"type": "string"}, "image": {"type": "string"}, "status": {"type": "string"},
                "start_time": {"type": "string"}, "end_time": {"type": "string"},
                "created_at": {"type": "string"}, "updated_at": {"type": "string"},
                "save_count": {"type": "integer"}, "capacity": {"type": "integer"},
                "contributor_id": {"type": "string"}, "contributor_name": {"type": "string"},
                "org_id": {"type": "string"}, "org_name": {"type": "string"}, "org_slug": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "controllers.OrganizationRef": {
            "type": "object",
            "properties": {"org_id": {"type": "string"}}
        },
        "controllers.UpdateEventRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "description": {"type": "string"}, "location": {"type": "string"},
                "image": {"type": "string"}, "status": {"type": "string"},
                "start_time": {"type": "string"}, "end_time": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "capacity": {"type": "integer"}
            }
        },
        "controllers.CreateEventRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}, "description": {"type": "string"}, "location": {"type": "string"},
                "image": {"type": "string"}, "status": {"type": "string"},
                "start_time": {"type": "string"}, "end_time": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "capacity": {"type": "integer"},
                "organization": {"$ref": "#/definitions/controllers.OrganizationRef"}
            }
        },
        "controllers.EventIDSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "object", "properties": {"event_id": {"type": "string"}}},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.GetEventSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.EventRow"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.SaveEventSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/domain.SavedEvent"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.ListTagsSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.Tag"}},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.SearchEventsSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "results": {"type": "array", "items": {"$ref": "#/definitions/domain.EventRow"}},
                        "resultSize": {"type": "object", "properties": {"event_count": {"type": "integer"}}},
                        "page": {"type": "integer"},
                        "pageSize": {"type": "integer"}
                    }
                },
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"description": "Bearer token issued by the campus identity provider", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Campus Events API",
	Description:      "Event discovery and mutation for the campus event directory.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
