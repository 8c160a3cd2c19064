package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Classroom Availability API",
        "description": "Classroom availability search and login check",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Rooms", "description": "Classroom availability search"},
        {"name": "Authentication", "description": "Credential check without tokens"},
        {"name": "Operations", "description": "Health and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Operations"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["Operations"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": ["Operations"],
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/search-room": {
            "get": {
                "tags": ["Rooms"],
                "summary": "Search available classrooms (HTML)",
                "produces": ["text/html", "text/plain"],
                "parameters": [
                    {"$ref": "#/parameters/dayofweek"},
                    {"$ref": "#/parameters/block"},
                    {"$ref": "#/parameters/timeslot"}
                ],
                "responses": {
                    "200": {"description": "Results page or no-results page"},
                    "400": {"description": "Malformed search parameters"},
                    "500": {"description": "An error occurred while searching for classrooms."}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Check credentials (HTML)",
                "consumes": ["application/x-www-form-urlencoded", "application/json"],
                "produces": ["text/html", "text/plain"],
                "parameters": [
                    {"name": "username", "in": "formData", "type": "string", "required": true},
                    {"name": "password", "in": "formData", "type": "string", "required": true},
                    {"name": "role", "in": "formData", "type": "string", "required": true, "enum": ["student", "faculty", "admin"]}
                ],
                "responses": {
                    "200": {"description": "Success or failure page"},
                    "400": {"description": "Missing fields"},
                    "429": {"description": "Too many failed attempts"},
                    "500": {"description": "An error occurred while processing your login request."}
                }
            }
        },
        "/api/v1/rooms/available": {
            "get": {
                "tags": ["Rooms"],
                "summary": "Search available classrooms",
                "produces": ["application/json"],
                "parameters": [
                    {"$ref": "#/parameters/dayofweek"},
                    {"$ref": "#/parameters/block"},
                    {"$ref": "#/parameters/timeslot"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/rooms/available/export": {
            "get": {
                "tags": ["Rooms"],
                "summary": "Download available classrooms",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"$ref": "#/parameters/dayofweek"},
                    {"$ref": "#/parameters/block"},
                    {"$ref": "#/parameters/timeslot"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Attachment", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Check credentials",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "parameters": {
        "dayofweek": {"name": "dayofweek", "in": "query", "type": "string", "required": true, "description": "Monday..Sunday or Mon..Sun"},
        "block": {"name": "block", "in": "query", "type": "string", "required": true},
        "timeslot": {"name": "timeslot", "in": "query", "type": "string", "required": true, "description": "HH:MM-HH:MM"}
    },
    "definitions": {
        "Classroom": {
            "type": "object",
            "properties": {
                "room_number": {"type": "string"},
                "block": {"type": "string"},
                "available": {"type": "boolean"}
            }
        },
        "RoomSearchResult": {
            "type": "object",
            "properties": {
                "dayofweek": {"type": "string"},
                "block": {"type": "string"},
                "start_time": {"type": "string"},
                "end_time": {"type": "string"},
                "rooms": {"type": "array", "items": {"$ref": "#/definitions/Classroom"}}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["student", "faculty", "admin"]}
            },
            "required": ["username", "password", "role"]
        },
        "LoginResult": {
            "type": "object",
            "properties": {
                "authenticated": {"type": "boolean"},
                "username": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
