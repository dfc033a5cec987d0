// Package docs registers the storefront API description with swag.
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
        "/store/{store}/shop": {
            "get": {
                "description": "Applies search, category, brand and facet selections to the store catalog and returns the sorted products with sidebar counts and facets.",
                "produces": ["application/json"],
                "tags": ["Storefront - Shop"],
                "summary": "Filter the shop catalog",
                "parameters": [
                    {"type": "string", "description": "Store slug", "name": "store", "in": "path", "required": true},
                    {"type": "string", "description": "Search on product name or slug", "name": "q", "in": "query"},
                    {"enum": ["latest", "price_asc", "price_desc", "name_asc", "name_desc"], "type": "string", "default": "latest", "description": "Sort key", "name": "sort", "in": "query"},
                    {"type": "string", "description": "Comma separated category slugs", "name": "cats", "in": "query"},
                    {"type": "string", "description": "Comma separated brand slugs", "name": "brands", "in": "query"},
                    {"type": "string", "description": "Single brand slug, used when brands is empty", "name": "brand", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Facet selection groupID:valueID (repeatable)", "name": "opt", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page number, only with limit", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page (1-100); all products when omitted", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/{store}/shop/facets": {
            "get": {
                "description": "Returns the category and brand lists with counts and the option facets for the current filter state, without the product grid.",
                "produces": ["application/json"],
                "tags": ["Storefront - Shop"],
                "summary": "Get the shop sidebars",
                "parameters": [
                    {"type": "string", "description": "Store slug", "name": "store", "in": "path", "required": true},
                    {"type": "string", "description": "Search on product name or slug", "name": "q", "in": "query"},
                    {"type": "string", "description": "Comma separated category slugs", "name": "cats", "in": "query"},
                    {"type": "string", "description": "Comma separated brand slugs", "name": "brands", "in": "query"},
                    {"type": "string", "description": "Single brand slug, used when brands is empty", "name": "brand", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Facet selection groupID:valueID (repeatable)", "name": "opt", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/store/{store}/products/{slug}": {
            "get": {
                "description": "Returns an active product with ordered media, variants and their option labels.",
                "produces": ["application/json"],
                "tags": ["Storefront - Products"],
                "summary": "Get product details",
                "parameters": [
                    {"type": "string", "description": "Store slug", "name": "store", "in": "path", "required": true},
                    {"type": "string", "description": "Product slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ApiResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ApiResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"type": "boolean"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}},
                "message": {"type": "string"},
                "meta": {"$ref": "#/definitions/models.Pagination"},
                "rate_limit": {"$ref": "#/definitions/models.RateLimiter"},
                "requested_entity": {"type": "string"}
            }
        },
        "models.Pagination": {
            "type": "object",
            "properties": {
                "limit": {"type": "integer", "example": 12},
                "page": {"type": "integer", "example": 1},
                "total": {"type": "integer", "example": 42},
                "total_pages": {"type": "integer", "example": 4}
            }
        },
        "models.RateLimiter": {
            "type": "object",
            "properties": {
                "limit": {"type": "integer"},
                "remaining": {"type": "integer"},
                "reset_at": {"type": "string"},
                "reset_in_seconds": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Modeva Shop Catalog API",
	Description:      "Storefront catalog filtering: search, category and brand sidebars, option facets and sorting per store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
