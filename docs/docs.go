// Package docs holds the OpenAPI description served at /swagger. Regenerate it from
// the handler annotations with: swag init -g cmd/server/main.go
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
        "/appointments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "List the logged doctor's appointments for one day",
                "parameters": [
                    {"type": "string", "description": "Day as YYYY-MM-DD, today when empty", "name": "date", "in": "query"},
                    {"type": "string", "description": "Patient name", "name": "name", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AppointmentsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/audit": {
            "get": {
                "produces": ["application/json"],
                "tags": ["audit"],
                "summary": "List recent privileged actions",
                "parameters": [
                    {"type": "integer", "description": "Number of entries, at most 200", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.AuditEntry"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/doctors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["doctors"],
                "summary": "List doctors",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.DoctorList"}}
                }
            }
        },
        "/doctors/filter": {
            "get": {
                "description": "Empty parameters do not constrain the result.",
                "produces": ["application/json"],
                "tags": ["doctors"],
                "summary": "Filter doctors by name, time of day and specialty",
                "parameters": [
                    {"type": "string", "description": "Doctor name", "name": "name", "in": "query"},
                    {"type": "string", "description": "AM or PM", "name": "time", "in": "query"},
                    {"type": "string", "description": "Specialty", "name": "specialty", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.DoctorListing"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "handler.AppointmentsResponse": {
            "type": "object",
            "properties": {
                "appointments": {"type": "array", "items": {"$ref": "#/definitions/model.Appointment"}},
                "date": {"type": "string"},
                "patient_name": {"type": "string"}
            }
        },
        "model.Appointment": {
            "type": "object",
            "properties": {
                "appointmentTime": {"type": "string"},
                "doctorId": {"type": "integer"},
                "doctorName": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "patientId": {"type": "integer"},
                "patientName": {"type": "string"},
                "phone": {"type": "string"},
                "prescription": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "model.AuditEntry": {
            "type": "object",
            "properties": {
                "action": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "message": {"type": "string"},
                "role": {"type": "string"},
                "session_id": {"type": "string"},
                "subject": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "model.Doctor": {
            "type": "object",
            "properties": {
                "availableTimes": {"type": "array", "items": {"type": "string"}},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "specialization": {"type": "string"},
                "specialty": {"type": "string"}
            }
        },
        "model.DoctorList": {
            "type": "object",
            "properties": {
                "doctors": {"type": "array", "items": {"$ref": "#/definitions/model.Doctor"}}
            }
        },
        "service.DoctorListing": {
            "type": "object",
            "properties": {
                "doctors": {"type": "array", "items": {"$ref": "#/definitions/model.Doctor"}},
                "filtered": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Clinic Portal API",
	Description:      "JSON endpoints of the clinic portal. Session routes use the portal's session cookie.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
