// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/mpc_backend/main.go -o cmd/docs
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
        "/currencies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "List all currencies",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CurrencyResponse"}}}
                }
            }
        },
        "/currencies/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Get a currency by code",
                "parameters": [{"type": "string", "description": "Currency code", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CurrencyResponse"}},
                    "404": {"description": "Currency not recognized"}
                }
            }
        },
        "/currencies/{code}/validity": {
            "get": {
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Get currency validity",
                "parameters": [{"type": "string", "description": "Currency code", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CurrencyValidityResponse"}}
                }
            }
        },
        "/currency/convert": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currency"],
                "summary": "Convert an amount",
                "parameters": [{"description": "Conversion", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ConvertRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ConvertResponse"}},
                    "400": {"description": "Invalid input"},
                    "422": {"description": "No exchange rate data"}
                }
            }
        },
        "/currency/format": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currency"],
                "summary": "Format an amount",
                "parameters": [{"description": "Amount to format", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.FormatRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FormattedResponse"}}
                }
            }
        },
        "/currency/format-price": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currency"],
                "summary": "Format a price",
                "parameters": [{"description": "Price to format", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.FormatPriceRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FormattedResponse"}}
                }
            }
        },
        "/currency/units": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currency"],
                "summary": "Convert between display amounts and base units",
                "parameters": [{"description": "Unit conversion", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UnitsRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UnitsResponse"}}
                }
            }
        },
        "/currency/paired": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currency"],
                "summary": "Render a price with its converted value",
                "parameters": [{"description": "Price to render", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PairedCurrencyRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FormattedResponse"}}
                }
            }
        },
        "/exchange-rates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["exchange-rates"],
                "summary": "Get the cached exchange rates",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ExchangeRatesResponse"}}
                }
            }
        },
        "/exchange-rates/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["exchange-rates"],
                "summary": "Get the exchange rate of a currency",
                "parameters": [{"type": "string", "description": "Currency code", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ExchangeRateResponse"}},
                    "404": {"description": "No exchange rate data"}
                }
            }
        },
        "/exchange-rates/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["exchange-rates"],
                "summary": "Refresh the exchange rates",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ExchangeRatesResponse"}},
                    "502": {"description": "Node request failed"}
                }
            }
        },
        "/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search listings",
                "parameters": [
                    {"type": "string", "description": "Search term", "name": "q", "in": "query"},
                    {"type": "integer", "description": "Page", "name": "p", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "ps", "in": "query"},
                    {"type": "string", "description": "Sort order", "name": "sortBy", "in": "query"},
                    {"type": "string", "description": "Provider URL with query", "name": "providerQ", "in": "query"},
                    {"type": "string", "description": "Use this provider for this request; the stored default is not changed", "name": "providerId", "in": "query"},
                    {"type": "boolean", "description": "Use the Tor endpoints", "name": "tor", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SearchResponse"}},
                    "400": {"description": "Invalid query"},
                    "429": {"description": "Too many requests"}
                }
            }
        },
        "/search/default-provider": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Get the default search provider",
                "parameters": [{"type": "boolean", "description": "Tor mode", "name": "tor", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SearchProviderResponse"}}
                }
            }
        },
        "/search-providers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search-providers"],
                "summary": "List search providers",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.SearchProviderResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["search-providers"],
                "summary": "Add a search provider",
                "parameters": [{"description": "Provider", "name": "provider", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateSearchProviderRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SearchProviderResponse"}},
                    "400": {"description": "Invalid input"},
                    "401": {"description": "Unauthorized"},
                    "409": {"description": "Provider id is built in"}
                }
            }
        },
        "/search-providers/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search-providers"],
                "summary": "Get a search provider",
                "parameters": [{"type": "string", "description": "Provider ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SearchProviderResponse"}},
                    "404": {"description": "Provider not found"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["search-providers"],
                "summary": "Delete a search provider",
                "parameters": [{"type": "string", "description": "Provider ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Provider is locked"},
                    "404": {"description": "Provider not found"}
                }
            }
        },
        "/search-providers/{id}/default": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["search-providers"],
                "summary": "Make a search provider the default",
                "parameters": [
                    {"type": "string", "description": "Provider ID", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "description": "Set the Tor mode default", "name": "tor", "in": "query"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Provider not found"}
                }
            }
        }
    },
    "definitions": {
        "dto.CurrencyResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"},
                "symbol": {"type": "string"},
                "isCrypto": {"type": "boolean"},
                "baseUnit": {"type": "integer"},
                "minDisplayDecimals": {"type": "integer"},
                "maxDisplayDecimals": {"type": "integer"},
                "testnetCode": {"type": "string"}
            }
        },
        "dto.CurrencyValidityResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "validity": {"type": "string", "example": "VALID"}
            }
        },
        "dto.ConvertRequest": {
            "type": "object",
            "required": ["amount", "from", "to"],
            "properties": {
                "amount": {"type": "number", "example": 10},
                "from": {"type": "string", "example": "USD"},
                "to": {"type": "string", "example": "BTC"},
                "format": {"type": "boolean"},
                "failOnMissingRate": {"type": "boolean"},
                "locale": {"type": "string", "example": "de-DE"},
                "bitcoinUnit": {"type": "string", "enum": ["BTC", "MBTC", "UBTC", "SATOSHI"]}
            }
        },
        "dto.ConvertResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "from": {"type": "string"},
                "to": {"type": "string"},
                "converted": {"type": "number"},
                "formatted": {"type": "string"}
            }
        },
        "dto.FormatRequest": {
            "type": "object",
            "required": ["amount", "currency"],
            "properties": {
                "amount": {"type": "number", "example": 1234.5},
                "currency": {"type": "string", "example": "USD"},
                "locale": {"type": "string", "example": "de-DE"},
                "bitcoinUnit": {"type": "string", "enum": ["BTC", "MBTC", "UBTC", "SATOSHI"]}
            }
        },
        "dto.FormatPriceRequest": {
            "type": "object",
            "required": ["price", "currency"],
            "properties": {
                "price": {"type": "number", "example": 0.123456789},
                "currency": {"type": "string", "example": "BTC"}
            }
        },
        "dto.PairedCurrencyRequest": {
            "type": "object",
            "required": ["price", "from", "to"],
            "properties": {
                "price": {"type": "number", "example": 10},
                "from": {"type": "string", "example": "USD"},
                "to": {"type": "string", "example": "BTC"}
            }
        },
        "dto.FormattedResponse": {
            "type": "object",
            "properties": {
                "formatted": {"type": "string"}
            }
        },
        "dto.UnitsRequest": {
            "type": "object",
            "required": ["direction", "currency"],
            "properties": {
                "direction": {"type": "string", "enum": ["toInteger", "toDecimal"]},
                "currency": {"type": "string", "example": "BTC"},
                "amount": {"type": "number", "example": 1.5},
                "baseUnits": {"type": "integer", "example": 150000000},
                "strict": {"type": "boolean"}
            }
        },
        "dto.UnitsResponse": {
            "type": "object",
            "properties": {
                "currency": {"type": "string"},
                "amount": {"type": "number"},
                "baseUnits": {"type": "integer"},
                "recognized": {"type": "boolean"}
            }
        },
        "dto.ExchangeRatesResponse": {
            "type": "object",
            "properties": {
                "serverCurrency": {"type": "object"},
                "rates": {"type": "object", "additionalProperties": {"type": "number"}},
                "fetchedAt": {"type": "string"}
            }
        },
        "dto.ExchangeRateResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "rate": {"type": "number"}
            }
        },
        "dto.CreateSearchProviderRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "logo": {"type": "string"},
                "search": {"type": "string"},
                "listings": {"type": "string"},
                "torsearch": {"type": "string"},
                "torlistings": {"type": "string"}
            }
        },
        "dto.SearchProviderResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "logo": {"type": "string"},
                "search": {"type": "string"},
                "listings": {"type": "string"},
                "torsearch": {"type": "string"},
                "torlistings": {"type": "string"},
                "locked": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "lastUpdatedAt": {"type": "string"}
            }
        },
        "dto.SearchResponse": {
            "type": "object",
            "properties": {
                "searchUrl": {"type": "string"},
                "providerId": {"type": "string"},
                "provider": {"$ref": "#/definitions/dto.SearchProviderResponse"},
                "selecting": {"type": "boolean"},
                "error": {"type": "object"},
                "results": {"type": "object"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Marketplace Client API",
	Description:      "Currency conversion, formatting, exchange rates and federated search for a marketplace client.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
