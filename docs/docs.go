// Package docs holds the Swagger 2.0 description of the orders API,
// registered with swag so gin-swagger can serve it.
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
        "/health": {
            "get": {
                "description": "Reports whether the service can reach its database",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.HealthResponse"}}
                }
            }
        },
        "/orders": {
            "get": {
                "security": [{"Bearer": []}],
                "description": "Returns every order that is not completed, newest first, with buyer, seller, region and truck details. Search and sort run over the full result.",
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List open orders",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive search over names, region, quality, quantity and truck", "name": "q", "in": "query"},
                    {"type": "string", "description": "Only orders with this status", "name": "status", "in": "query"},
                    {"type": "string", "description": "Only orders in this region (UUID)", "name": "region_id", "in": "query"},
                    {"type": "string", "description": "Sort field", "name": "sort", "in": "query"},
                    {"type": "string", "description": "asc or desc", "name": "direction", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.OrderListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/orders/search": {
            "get": {
                "security": [{"Bearer": []}],
                "description": "Search contract for the search page. The query parameter is q; an empty query returns every open order.",
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Search orders",
                "parameters": [
                    {"type": "string", "description": "Search text", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.OrderListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/orders/{order_id}": {
            "get": {
                "security": [{"Bearer": []}],
                "description": "Returns one order with buyer, seller and region",
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get order details",
                "parameters": [
                    {"type": "string", "description": "Order ID (UUID)", "name": "order_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.OrderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/orders/{order_id}/status": {
            "patch": {
                "security": [{"Bearer": []}],
                "description": "Moves an order to another lifecycle status. Orders moved to completed drop out of the order list.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Update order status",
                "parameters": [
                    {"type": "string", "description": "Order ID (UUID)", "name": "order_id", "in": "path", "required": true},
                    {"description": "New status", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.OrderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/orders/{order_id}/daily-loading": {
            "get": {
                "security": [{"Bearer": []}],
                "description": "Returns the per-day loading series with the total loaded and the quantity remaining",
                "produces": ["application/json"],
                "tags": ["loading"],
                "summary": "Daily loading summary",
                "parameters": [
                    {"type": "string", "description": "Order ID (UUID)", "name": "order_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LoadingSummaryResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"Bearer": []}],
                "description": "Appends a positive quantity to the order's daily loading and returns the refreshed order",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["loading"],
                "summary": "Record a loading day",
                "parameters": [
                    {"type": "string", "description": "Order ID (UUID)", "name": "order_id", "in": "path", "required": true},
                    {"description": "Pieces loaded", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.AddLoadingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.OrderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/orders/{order_id}/daily-loading/{index}": {
            "delete": {
                "security": [{"Bearer": []}],
                "description": "Removes the entry at index from the order's daily loading and returns the refreshed order",
                "produces": ["application/json"],
                "tags": ["loading"],
                "summary": "Remove a loading day",
                "parameters": [
                    {"type": "string", "description": "Order ID (UUID)", "name": "order_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Zero-based day index", "name": "index", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.OrderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/orders/{order_id}/media": {
            "get": {
                "security": [{"Bearer": []}],
                "description": "Returns the photos and videos recorded for an order, newest first",
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "List order media",
                "parameters": [
                    {"type": "string", "description": "Order ID (UUID)", "name": "order_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MediaListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"Bearer": []}],
                "description": "Uploads one or more photos or videos for an order. Files are processed concurrently and independently; when some fail the response is 207 and the message reads \"<k> of <N> failed\".",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "Attach media to an order",
                "parameters": [
                    {"type": "string", "description": "Order ID (UUID)", "name": "order_id", "in": "path", "required": true},
                    {"type": "file", "description": "Photos or videos (multiple files allowed)", "name": "files", "in": "formData", "required": true},
                    {"type": "string", "description": "Description applied to every file", "name": "description", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UploadResponse"}},
                    "207": {"description": "Multi-Status", "schema": {"$ref": "#/definitions/models.UploadResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/models.UploadResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.UploadResponse"}}
                }
            }
        },
        "/orders/{order_id}/media/objects": {
            "get": {
                "security": [{"Bearer": []}],
                "description": "Lists the object keys under the order's storage prefix",
                "produces": ["application/json"],
                "tags": ["media"],
                "summary": "List stored objects",
                "parameters": [
                    {"type": "string", "description": "Order ID (UUID)", "name": "order_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StoredObjectsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/media/{media_id}": {
            "delete": {
                "security": [{"Bearer": []}],
                "description": "Removes the stored object and the order_media row. The row is deleted even when the object cannot be removed.",
                "tags": ["media"],
                "summary": "Delete media",
                "parameters": [
                    {"type": "string", "description": "Media ID (UUID)", "name": "media_id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/regions": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["regions"],
                "summary": "List regions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.RegionsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/me": {
            "get": {
                "security": [{"Bearer": []}],
                "description": "Returns the profile of the authenticated user",
                "produces": ["application/json"],
                "tags": ["profiles"],
                "summary": "Current user profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Profile"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.AddLoadingRequest": {
            "type": "object",
            "properties": {
                "quantity": {"description": "Quantity is the number of pieces loaded on the new day.", "type": "integer"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "database": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "models.LoadingPoint": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "quantity": {"type": "integer"}
            }
        },
        "models.LoadingSummaryResponse": {
            "type": "object",
            "properties": {
                "days": {"type": "array", "items": {"$ref": "#/definitions/models.LoadingPoint"}},
                "order_id": {"type": "string"},
                "order_quantity": {"type": "integer"},
                "remaining": {"type": "integer"},
                "total_loaded": {"type": "integer"}
            }
        },
        "models.MediaListResponse": {
            "type": "object",
            "properties": {
                "media": {"type": "array", "items": {"$ref": "#/definitions/models.MediaResponse"}}
            }
        },
        "models.MediaResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "id": {"type": "string"},
                "media_type": {"type": "string", "enum": ["image", "video"]},
                "media_url": {"type": "string"},
                "order_id": {"type": "string"},
                "uploaded_at": {"type": "string"},
                "uploaded_by": {"type": "string"}
            }
        },
        "models.OrderListResponse": {
            "type": "object",
            "properties": {
                "orders": {"type": "array", "items": {"$ref": "#/definitions/models.OrderResponse"}},
                "total": {"type": "integer"}
            }
        },
        "models.OrderResponse": {
            "type": "object",
            "properties": {
                "buyer": {"$ref": "#/definitions/models.Profile"},
                "buyer_id": {"type": "string"},
                "created_at": {"type": "string"},
                "daily_loading": {"type": "array", "items": {"type": "integer"}},
                "id": {"type": "string"},
                "nut_quality": {"type": "string", "enum": ["single_filter", "double_filter", "mixed_filter"]},
                "nut_quality_label": {"type": "string"},
                "order_value": {"type": "string"},
                "payment_status": {"type": "string"},
                "price_per_unit": {"type": "string"},
                "quantity": {"type": "integer"},
                "region": {"$ref": "#/definitions/models.Region"},
                "region_id": {"type": "string"},
                "seller": {"$ref": "#/definitions/models.Profile"},
                "seller_id": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "approved", "rejected", "completed", "loading_initiated", "loading_started", "loading_stopped", "loading_completed"]},
                "status_label": {"type": "string"},
                "truck_details": {"type": "array", "items": {"$ref": "#/definitions/models.TruckDetail"}},
                "updated_at": {"type": "string"}
            }
        },
        "models.Profile": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "id": {"type": "string"},
                "phone_number": {"type": "string"},
                "profile_avatar": {"type": "string"},
                "user_type": {"type": "string", "enum": ["buyer", "seller"]}
            }
        },
        "models.Region": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "models.RegionsResponse": {
            "type": "object",
            "properties": {
                "regions": {"type": "array", "items": {"$ref": "#/definitions/models.Region"}}
            }
        },
        "models.StoredObjectsResponse": {
            "type": "object",
            "properties": {
                "order_id": {"type": "string"},
                "paths": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.TruckDetail": {
            "type": "object",
            "properties": {
                "driver_name": {"type": "string"},
                "driver_number": {"type": "string"},
                "id": {"type": "string"},
                "order_id": {"type": "string"},
                "truck_number": {"type": "string"}
            }
        },
        "models.UpdateStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string"}
            }
        },
        "models.UploadErrorInfo": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "filename": {"type": "string"}
            }
        },
        "models.UploadResponse": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"$ref": "#/definitions/models.UploadErrorInfo"}},
                "media": {"type": "array", "items": {"$ref": "#/definitions/models.MediaResponse"}},
                "message": {"type": "string"},
                "order_id": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Nut Orders Backend API",
	Description:      "Backend API for agricultural purchase orders: order browsing with search and sort, status updates, daily loading records and photo/video attachments stored in Supabase Storage.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
