// Package docs holds the OpenAPI description served by gin-swagger. Keep it
// in step with the swag annotations on the handlers.
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
        "/categories": {
            "get": {
                "description": "All categories as an id to type mapping",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CategoriesResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/categories/{id}/questions": {
            "get": {
                "description": "Questions of one category in random order, paginated. total_questions counts the returned page.",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List questions of a category",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CategoryQuestionsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/questions": {
            "get": {
                "description": "All questions in random order, paginated by 10, with the category mapping",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "List questions",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.QuestionsPageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/questions/search": {
            "post": {
                "description": "Case-insensitive substring match on the question text. Only the requested page (10 rows) is returned and total_questions counts that page.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Search questions",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"description": "Search term", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SearchQuestionsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SearchQuestionsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/questions/submit": {
            "post": {
                "description": "Fields are optional; absent ones are stored as null. The category id is not checked.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Create a question",
                "parameters": [
                    {"description": "Question data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateQuestionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CreateQuestionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/questions/{id}": {
            "delete": {
                "description": "Deletes the question and returns the remaining questions ordered by id, paginated",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Delete a question",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.DeleteQuestionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/quizzes": {
            "post": {
                "description": "A random question of the category (id 0 for any) not in previous_questions. question is null once the category is exhausted.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Next quiz question",
                "parameters": [
                    {"description": "Quiz state", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.PlayQuizRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.PlayQuizResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.CategoriesResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "object", "additionalProperties": {"type": "string"}},
                "success": {"type": "boolean", "example": true},
                "total_categories": {"type": "integer", "example": 6}
            }
        },
        "handlers.CategoryQuestionsResponse": {
            "type": "object",
            "properties": {
                "questions": {"type": "array", "items": {"$ref": "#/definitions/models.FormattedQuestion"}},
                "success": {"type": "boolean", "example": true},
                "total_questions": {"type": "integer", "example": 2}
            }
        },
        "handlers.CreateQuestionRequest": {
            "type": "object",
            "properties": {
                "answer": {"type": "string", "example": "Alexander Fleming"},
                "category": {"type": "integer", "example": 1},
                "difficulty": {"type": "integer", "example": 3},
                "question": {"type": "string", "example": "Who discovered penicillin?"}
            }
        },
        "handlers.CreateQuestionResponse": {
            "type": "object",
            "properties": {
                "created": {"type": "integer", "example": 24},
                "success": {"type": "boolean", "example": true},
                "total_questions": {"type": "integer", "example": 20}
            }
        },
        "handlers.DeleteQuestionResponse": {
            "type": "object",
            "properties": {
                "deleted": {"type": "integer", "example": 21},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/models.FormattedQuestion"}},
                "success": {"type": "boolean", "example": true},
                "total_questions": {"type": "integer", "example": 18}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "integer", "example": 404},
                "message": {"type": "string", "example": "resource not found"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "handlers.PlayQuizRequest": {
            "type": "object",
            "properties": {
                "previous_questions": {"type": "array", "items": {"type": "integer"}, "example": [2]},
                "quiz_category": {"$ref": "#/definitions/handlers.QuizCategory"}
            }
        },
        "handlers.PlayQuizResponse": {
            "type": "object",
            "properties": {
                "question": {"$ref": "#/definitions/models.FormattedQuestion"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handlers.QuestionsPageResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "object", "additionalProperties": {"type": "string"}},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/models.FormattedQuestion"}},
                "success": {"type": "boolean", "example": true},
                "total_questions": {"type": "integer", "example": 19}
            }
        },
        "handlers.QuizCategory": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 0},
                "type": {"type": "string", "example": "click"}
            }
        },
        "handlers.SearchQuestionsRequest": {
            "type": "object",
            "properties": {
                "searchTerm": {"type": "string", "example": "which"}
            }
        },
        "handlers.SearchQuestionsResponse": {
            "type": "object",
            "properties": {
                "questions": {"type": "array", "items": {"$ref": "#/definitions/models.FormattedQuestion"}},
                "success": {"type": "boolean", "example": true},
                "total_questions": {"type": "integer", "example": 7}
            }
        },
        "models.FormattedQuestion": {
            "type": "object",
            "properties": {
                "answer": {"type": "string"},
                "category": {"type": "integer"},
                "difficulty": {"type": "integer"},
                "id": {"type": "integer"},
                "question": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Trivia API",
	Description:      "Trivia questions by category, search and quiz play",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
