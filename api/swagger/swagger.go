package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "LearnSphere API",
        "description": "Booking and visitor-analytics backend for the LearnSphere tutoring site",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Bookings", "description": "Demo session booking lifecycle"},
        {"name": "Inquiries", "description": "Subject queries and contact messages"},
        {"name": "Visitors", "description": "Anonymous visit/leave telemetry"},
        {"name": "Admin", "description": "Dashboard statistics and exports"},
        {"name": "Auth", "description": "Admin authentication"}
    ],
    "paths": {
        "/demo-bookings": {
            "post": {
                "tags": ["Bookings"],
                "summary": "Submit a demo booking",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error with per-field details"}
                }
            },
            "get": {
                "tags": ["Bookings"],
                "summary": "List all demo bookings, newest first",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/demo-bookings/{id}": {
            "delete": {
                "tags": ["Bookings"],
                "summary": "Delete a booking",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/demo-bookings/{id}/status": {
            "patch": {
                "tags": ["Bookings"],
                "summary": "Transition a booking's status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Updated"},
                    "400": {"description": "Unknown status"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/subject-queries": {
            "post": {
                "tags": ["Inquiries"],
                "summary": "Submit a subject query",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error"}
                }
            }
        },
        "/contact-messages": {
            "post": {
                "tags": ["Inquiries"],
                "summary": "Submit a contact message",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error"}
                }
            }
        },
        "/visitors/track": {
            "post": {
                "tags": ["Visitors"],
                "summary": "Record a visit or leave event",
                "responses": {
                    "200": {"description": "Tracked"},
                    "400": {"description": "Invalid event type"}
                }
            }
        },
        "/admin/stats": {
            "get": {
                "tags": ["Admin"],
                "summary": "Dashboard statistics snapshot",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/subject-queries": {
            "get": {
                "tags": ["Admin"],
                "summary": "List subject queries",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/contact-messages": {
            "get": {
                "tags": ["Admin"],
                "summary": "List contact messages",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/bookings/export": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export bookings as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "required": false, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/catalog": {
            "get": {
                "tags": ["Bookings"],
                "summary": "Grade and subject catalogs",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Admin login",
                "responses": {
                    "200": {"description": "Token issued"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        }
    },
    "definitions": {
        "FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/FieldError"}}
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
