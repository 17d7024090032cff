package api

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
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/rest.HealthResponse"}
                    }
                }
            }
        },
        "/payment": {
            "post": {
                "description": "Validates the payment, asks the acquiring bank for a decision and stores the outcome.\nInvalid requests are answered with a Rejected record and status 400.\nA Rejected record with status 200 means the bank could not be reached.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Process a card payment",
                "parameters": [
                    {
                        "description": "Card payment",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.PaymentRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/rest.PaymentResponse"}
                    },
                    "400": {
                        "description": "Rejected by validation",
                        "schema": {"$ref": "#/definitions/rest.PaymentResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/rest.ErrorResponse"}
                    }
                }
            }
        },
        "/payment/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Retrieve a processed payment",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Payment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/rest.PaymentResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/rest.ErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/rest.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "rest.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "PAYMENT_NOT_FOUND"},
                "message": {"type": "string"}
            }
        },
        "rest.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/rest.ErrorDetail"},
                "success": {"type": "boolean"}
            }
        },
        "rest.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"}
            }
        },
        "rest.PaymentRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer", "example": 100},
                "card_number": {"type": "string", "example": "2222405343248877"},
                "currency": {"type": "string", "example": "GBP"},
                "cvv": {"type": "string", "example": "123"},
                "expiry_month": {"type": "integer", "example": 4},
                "expiry_year": {"type": "integer", "example": 2027}
            }
        },
        "rest.PaymentResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer", "example": 100},
                "cardNumberLastFour": {"type": "integer", "example": 8877},
                "currency": {"type": "string", "example": "GBP"},
                "expiryMonth": {"type": "integer", "example": 4},
                "expiryYear": {"type": "integer", "example": 2027},
                "id": {"type": "string", "format": "uuid"},
                "status": {
                    "type": "string",
                    "enum": ["Authorized", "Declined", "Rejected"]
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Checkout Payment Gateway",
	Description:      "Card payment facade in front of an acquiring bank.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
