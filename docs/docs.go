// Package docs provides the swagger specification served at /swagger.
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
        "/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Authenticate and obtain a token",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health": {
            "get": {
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/jobs": {
            "get": {
                "tags": ["jobs"],
                "summary": "List available job roles",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["jobs"],
                "summary": "Create a job role",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/jobs/{id}": {
            "get": {
                "tags": ["jobs"],
                "summary": "Get one job role",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/profile": {
            "get": {
                "tags": ["profile"],
                "summary": "Get the full career profile",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/resume/upload": {
            "post": {
                "tags": ["resume"],
                "summary": "Upload a resume file",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/resume/text": {
            "put": {
                "tags": ["resume"],
                "summary": "Replace the resume with pasted text",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/resume": {
            "get": {
                "tags": ["resume"],
                "summary": "Get the stored resume",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/analysis": {
            "post": {
                "tags": ["analysis"],
                "summary": "Run a skill gap analysis",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "get": {
                "tags": ["analysis"],
                "summary": "Get the stored skill gap analysis",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/roadmap": {
            "post": {
                "tags": ["roadmap"],
                "summary": "Generate (or regenerate) the learning roadmap",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "get": {
                "tags": ["roadmap"],
                "summary": "Get the stored roadmap",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/roadmap/step/{stepIndex}": {
            "put": {
                "tags": ["roadmap"],
                "summary": "Update a roadmap step's status",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/roadmap/step/{stepIndex}/youtube": {
            "get": {
                "tags": ["roadmap"],
                "summary": "Get YouTube playlists for a roadmap step",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/roadmap/step/{stepIndex}/quiz": {
            "post": {
                "tags": ["roadmap"],
                "summary": "Get or generate the quiz for a roadmap step",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/roadmap/step/{stepIndex}/quiz/submit": {
            "post": {
                "tags": ["roadmap"],
                "summary": "Submit quiz answers for grading",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/resources/{skill}": {
            "get": {
                "tags": ["resources"],
                "summary": "Get learning resources for a skill",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/assistant/chat": {
            "post": {
                "tags": ["assistant"],
                "summary": "Ask the career assistant a question",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/progress": {
            "get": {
                "tags": ["progress"],
                "summary": "Get progress summary",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/progress/detailed": {
            "get": {
                "tags": ["progress"],
                "summary": "Get per-skill progress and a 30-day completion timeline",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "SkillBridge Backend API",
	Description:      "Career skill gap analysis and learning roadmap service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
