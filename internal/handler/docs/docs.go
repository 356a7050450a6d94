// Package docs registers the OpenAPI document served at /swagger/doc.json.
package docs

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
        "/auth/": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Obtain authentication tokens",
                "description": "Authenticates a user with email and password and returns new access and refresh tokens.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Access and refresh tokens provided.", "schema": {"$ref": "#/definitions/TokenResponse"}},
                    "400": {"description": "Invalid credentials.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/users/": {
            "post": {
                "tags": ["Users"],
                "summary": "Create a new user",
                "description": "Registers a new user in the system. Email must be unique.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "User created successfully."},
                    "400": {"description": "Invalid data provided."}
                }
            }
        },
        "/users/{id}/": {
            "get": {
                "tags": ["Users"],
                "summary": "View a specific user",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "User details.", "schema": {"$ref": "#/definitions/User"}},
                    "401": {"description": "Authentication credentials were not provided.", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "User not found or has been deleted.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            },
            "patch": {
                "tags": ["Users"],
                "summary": "Update a specific user",
                "description": "Updates some fields of an existing user. Only the provided fields will be updated.",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "200": {"description": "User updated.", "schema": {"$ref": "#/definitions/User"}},
                    "400": {"description": "Invalid data provided."},
                    "403": {"description": "Not the profile owner.", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "User not found or has been deleted.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Delete a specific user",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "204": {"description": "User deleted."},
                    "400": {"description": "User already deleted.", "schema": {"$ref": "#/definitions/Detail"}},
                    "403": {"description": "Not the profile owner.", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "User not found or has been deleted.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/posts/": {
            "post": {
                "tags": ["Posts"],
                "summary": "Create a new post",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "post", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PostRequest"}}
                ],
                "responses": {
                    "201": {"description": "Post created.", "schema": {"$ref": "#/definitions/Post"}},
                    "400": {"description": "Invalid data provided."}
                }
            }
        },
        "/users/{id}/posts/": {
            "get": {
                "tags": ["Posts"],
                "summary": "List posts by a specific user",
                "description": "Retrieves all non-deleted posts created by a specific user, newest first.",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "Posts by the specified user.", "schema": {"type": "array", "items": {"$ref": "#/definitions/Post"}}},
                    "404": {"description": "User not found.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/posts/{id}/": {
            "get": {
                "tags": ["Posts"],
                "summary": "View a specific post",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "Post details.", "schema": {"$ref": "#/definitions/Post"}},
                    "404": {"description": "Post not found or has been deleted.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            },
            "patch": {
                "tags": ["Posts"],
                "summary": "Update a specific post",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "post", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PostRequest"}}
                ],
                "responses": {
                    "200": {"description": "Post updated.", "schema": {"$ref": "#/definitions/Post"}},
                    "403": {"description": "Not the post owner.", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "Post not found or has been deleted.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            },
            "delete": {
                "tags": ["Posts"],
                "summary": "Delete a specific post",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "204": {"description": "Post deleted."},
                    "403": {"description": "Not the post owner.", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "Post not found or has been deleted.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/users/{id}/follow/": {
            "post": {
                "tags": ["Follows"],
                "summary": "Follow a user",
                "description": "Follows the user specified by ID. No request body is needed.",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "201": {"description": "Successfully followed the user.", "schema": {"$ref": "#/definitions/Follow"}},
                    "400": {"description": "Self-follow or already following.", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "User to follow not found.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        },
        "/users/{id}/unfollow/": {
            "delete": {
                "tags": ["Follows"],
                "summary": "Unfollow a user",
                "description": "Unfollows the user specified by ID. No request body is needed.",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "204": {"description": "Unfollowed."},
                    "400": {"description": "You were not following this user.", "schema": {"$ref": "#/definitions/Detail"}},
                    "404": {"description": "User to unfollow not found.", "schema": {"$ref": "#/definitions/Detail"}}
                }
            }
        }
    },
    "definitions": {
        "Detail": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "TokenResponse": {
            "type": "object",
            "properties": {
                "user_id": {"type": "integer"},
                "access_token": {"type": "string"},
                "refresh_token": {"type": "string"}
            }
        },
        "RegisterRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"},
                "deleted_at": {"type": "string", "format": "date-time", "x-nullable": true}
            }
        },
        "PostRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 100},
                "content": {"type": "string"},
                "image_url": {"type": "string", "maxLength": 255}
            }
        },
        "Post": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "image_url": {"type": "string", "x-nullable": true},
                "user": {
                    "type": "object",
                    "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}
                },
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "Follow": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "follower": {"type": "integer"},
                "following": {"type": "integer"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Bearer authentication token. Format: \"Bearer <your_token>\""
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Social Network API",
	Description:      "A small social-networking backend: users, posts, and follow relationships.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
