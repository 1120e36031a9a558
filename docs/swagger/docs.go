// Package swagger registers the OpenAPI description served at /swagger.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{escape .Title}}",
        "description": "{{escape .Description}}",
        "contact": {
            "name": "API Support",
            "email": "support@route-optimizer.dev"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Service health",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/routes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Routes"],
                "summary": "Compute an optimized route",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/routes/summaries": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Routes"],
                "summary": "Compare all route objectives for one trip",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/geocode/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Geocoding"],
                "summary": "Geocode a free-text query",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/geocode/reverse": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Geocoding"],
                "summary": "Reverse geocode a coordinate",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/vehicles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Vehicles"],
                "summary": "List vehicle profiles",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/vehicles/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Vehicles"],
                "summary": "Get one vehicle profile",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/charging/plan": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Charging"],
                "summary": "Estimate charging need and build a schedule advisory",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/charging/stations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Charging"],
                "summary": "List charging stations near a point",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/navigation/start": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Navigation"],
                "summary": "Start a simulated navigation run",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/navigation/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Navigation"],
                "summary": "Get the state of a navigation session",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Navigation"],
                "summary": "Stop a navigation session",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Route Optimizer API",
	Description:      "Route planning and navigation simulation service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
