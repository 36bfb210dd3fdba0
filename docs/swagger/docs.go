// Package swagger регистрирует описание API для /swagger/*
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/extract/json": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Extract"],
                "summary": "Выписка об ограничениях публичного права по участку",
                "parameters": [
                    {"type": "string", "description": "Федеральный идентификатор участка", "name": "EGRID", "in": "query", "required": true},
                    {"type": "string", "description": "Язык выписки", "name": "LANG", "in": "query"},
                    {"type": "string", "default": "ALL", "description": "ALL, ALL_FEDERAL или список кодов тем", "name": "TOPICS", "in": "query"},
                    {"type": "boolean", "default": false, "description": "Включить геометрии", "name": "GEOMETRY", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ExtractEnvelope"}},
                    "204": {"description": "Участок не найден"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/getegrid/json": {
            "get": {
                "produces": ["application/json"],
                "tags": ["RealEstate"],
                "summary": "Поиск EGRID участков",
                "parameters": [
                    {"type": "string", "description": "Координаты x,y", "name": "EN", "in": "query"},
                    {"type": "string", "description": "Идентификатор кадастрового округа", "name": "IDENTDN", "in": "query"},
                    {"type": "string", "description": "Номер участка", "name": "NUMBER", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.EGRIDEnvelope"}},
                    "204": {"description": "Участки не найдены"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/capabilities/json": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Service"],
                "summary": "Возможности сервиса",
                "parameters": [
                    {"type": "string", "description": "Язык названий тем", "name": "LANG", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CapabilitiesEnvelope"}}
                }
            }
        },
        "/api/v1/versions/json": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Service"],
                "summary": "Поддерживаемые версии",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.VersionsEnvelope"}}
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Service"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/errors.AppError"}}
        },
        "handler.ExtractEnvelope": {
            "type": "object",
            "properties": {
                "GetExtractByIdResponse": {
                    "type": "object",
                    "properties": {"extract": {"type": "object"}}
                }
            }
        },
        "handler.EGRIDEnvelope": {
            "type": "object",
            "properties": {"GetEGRIDResponse": {"type": "object"}}
        },
        "handler.CapabilitiesEnvelope": {
            "type": "object",
            "properties": {"GetCapabilitiesResponse": {"type": "object"}}
        },
        "handler.VersionsEnvelope": {
            "type": "object",
            "properties": {"GetVersionsResponse": {"type": "object"}}
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "time": {"type": "string"},
                "checks": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "2.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "OEREB Extract Service API",
	Description:      "Выписки кадастра ограничений публичного права по участку.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
