// Package docs holds the generated swagger description for the HTTP API.
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
        "/api/classes": {
            "get": {
                "summary": "List class postings scoped by the caller's role",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "summary": "Create a class posting (student)",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/classes/{class_id}": {
            "get": {
                "summary": "Class posting detail",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/classes/{class_id}/approve": {
            "put": {
                "summary": "Approve a pending class posting (admin)",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/classes/{class_id}/reject": {
            "put": {
                "summary": "Reject a pending class posting (admin)",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/classes/{class_id}/apply": {
            "post": {
                "summary": "Apply to an approved class posting (tutor)",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/classes/{class_id}/select-tutor": {
            "put": {
                "summary": "Select a tutor for an approved posting (owner)",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/api/classes/{class_id}/complete": {
            "put": {
                "summary": "Mark a class done (admin or selected tutor)",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/api/classes/{class_id}/cancel": {
            "put": {
                "summary": "Request cancellation via support (participant)",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/tutors": {
            "get": {
                "summary": "Search approved tutor profiles",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/tutors/pending": {
            "get": {
                "summary": "Profiles awaiting review (admin, cskh)",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/tutors/{tutor_id}": {
            "get": {
                "summary": "Tutor profile detail",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/tutors/submit-cv": {
            "post": {
                "summary": "Submit or resubmit a tutor CV",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/tutors/{tutor_id}/approve": {
            "put": {
                "summary": "Record a review verdict on a CV (admin, cskh)",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "TutorLink API",
	Description:      "Class posting lifecycle and tutor directory.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
