// Package docs registers the OpenAPI description served at /swagger.
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
        "/posts": {"get": {"tags": ["Blog"], "summary": "List posts", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PostListResponse"}}}}},
        "/posts/featured": {"get": {"tags": ["Blog"], "summary": "List featured posts", "parameters": [{"type": "integer", "default": 3, "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PostListResponse"}}}}},
        "/posts/latest": {"get": {"tags": ["Blog"], "summary": "List latest posts", "parameters": [{"type": "integer", "default": 5, "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PostListResponse"}}}}},
        "/posts/{slug}": {"get": {"tags": ["Blog"], "summary": "Get a post by slug", "parameters": [{"type": "string", "name": "slug", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Post not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}},
        "/categories": {"get": {"tags": ["Blog"], "summary": "List categories", "responses": {"200": {"description": "OK"}}}},
        "/categories/{slug}/posts": {"get": {"tags": ["Blog"], "summary": "List posts in a category", "parameters": [{"type": "string", "name": "slug", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PostListResponse"}}}}},
        "/tags/{tag}/posts": {"get": {"tags": ["Blog"], "summary": "List posts with a tag", "parameters": [{"type": "string", "name": "tag", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PostListResponse"}}}}},
        "/authors": {"get": {"tags": ["Blog"], "summary": "List authors", "responses": {"200": {"description": "OK"}}}},
        "/home": {"get": {"tags": ["Blog"], "summary": "Home page data", "responses": {"200": {"description": "OK"}}}},
        "/cms/diagnostics": {"get": {"tags": ["Blog"], "summary": "CMS diagnostics", "responses": {"200": {"description": "OK"}}}},
        "/locales": {"get": {"tags": ["System"], "summary": "Language switcher", "parameters": [{"type": "string", "name": "path", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/quiz/questions": {"get": {"tags": ["Quiz"], "summary": "List quiz questions", "responses": {"200": {"description": "OK"}}}},
        "/quiz/sessions": {"post": {"tags": ["Quiz"], "summary": "Start a quiz session", "parameters": [{"type": "string", "name": "X-Client-ID", "in": "header"}], "responses": {"201": {"description": "Created"}}}},
        "/quiz/sessions/{id}": {"get": {"tags": ["Quiz"], "summary": "Get a quiz session", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "X-Client-ID", "in": "header", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}},
        "/quiz/sessions/{id}/answer": {"post": {"tags": ["Quiz"], "summary": "Answer the current question", "consumes": ["application/json"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "X-Client-ID", "in": "header", "required": true}, {"name": "answer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SubmitAnswerRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Answer does not fit the question", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}, "409": {"description": "Quiz already completed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}},
        "/quiz/sessions/{id}/advance": {"post": {"tags": ["Quiz"], "summary": "Move to the next question", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "X-Client-ID", "in": "header", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Answer not submitted yet, or quiz already completed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}}}},
        "/quiz/sessions/{id}/restart": {"post": {"tags": ["Quiz"], "summary": "Restart a quiz session", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "X-Client-ID", "in": "header", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/quiz/history": {"get": {"tags": ["Quiz"], "summary": "Quiz history for the client", "parameters": [{"type": "string", "name": "X-Client-ID", "in": "header", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/quiz/stats": {"get": {"tags": ["Quiz"], "summary": "Aggregate quiz statistics for the client", "parameters": [{"type": "string", "name": "X-Client-ID", "in": "header", "required": true}], "responses": {"200": {"description": "OK"}}}}
    },
    "definitions": {
        "dto.ErrorResponse": {"type": "object", "properties": {"message": {"type": "string"}, "details": {"type": "array", "items": {"type": "string"}}}},
        "dto.SubmitAnswerRequest": {"type": "object", "required": ["answer"], "properties": {"answer": {"description": "true/false, \"o\"/\"x\", or a zero-based option index"}}},
        "dto.PostListResponse": {"type": "object", "properties": {"locale": {"type": "string"}, "total": {"type": "integer"}, "items": {"type": "array", "items": {"type": "object"}}, "empty_message": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Enrich the World Blog API",
	Description:      "Bilingual blog content from Contentful and the technology and social impact quiz. Korean routes live under /api/v1/kr.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
