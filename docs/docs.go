// Package docs holds the Swagger description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@careerhub.example.com"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {"post": {"tags": ["Auth"], "summary": "Register new user", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/services.RegisterInput"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/auth/login": {"post": {"tags": ["Auth"], "summary": "Login user", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/services.LoginInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/auth/refresh": {"post": {"tags": ["Auth"], "summary": "Refresh access token", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/auth/logout": {"post": {"tags": ["Auth"], "summary": "Logout user", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/auth/logout-all": {"post": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Logout from all devices", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/auth/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Get current user", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/profile": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Profile"], "summary": "Get profile", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Profile"], "summary": "Update profile", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/services.UpdateProfileInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/profile/password": {"put": {"security": [{"BearerAuth": []}], "tags": ["Profile"], "summary": "Change password", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/services.ChangePasswordInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/careers": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Careers"], "summary": "List careers", "parameters": [{"type": "string", "name": "status", "in": "query"}, {"type": "string", "name": "job_category", "in": "query"}, {"type": "string", "name": "order_by", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Careers"], "summary": "Create career", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/services.CreateCareerInput"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/careers/statistics": {"get": {"security": [{"BearerAuth": []}], "tags": ["Careers"], "summary": "Career statistics", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/careers/experience": {"get": {"security": [{"BearerAuth": []}], "tags": ["Careers"], "summary": "Experience of selected careers", "parameters": [{"type": "string", "name": "ids", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/careers/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Careers"], "summary": "Get career", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Careers"], "summary": "Update career", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/services.UpdateCareerInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Careers"], "summary": "Delete career", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/careers/{id}/submit": {"post": {"security": [{"BearerAuth": []}], "tags": ["Careers"], "summary": "Submit career", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/certificates": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Certificates"], "summary": "List certificate requests", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Certificates"], "summary": "Request certificates", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/services.RequestCertificateInput"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Response"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/certificates/eligible": {"get": {"security": [{"BearerAuth": []}], "tags": ["Certificates"], "summary": "List certifiable careers", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/certificates/{id}/download": {"get": {"security": [{"BearerAuth": []}], "produces": ["application/pdf"], "tags": ["Certificates"], "summary": "Download certificate", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"type": "file"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/documents": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Documents"], "summary": "List documents", "parameters": [{"type": "string", "name": "category", "in": "query"}, {"type": "string", "name": "career_id", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "tags": ["Documents"], "summary": "Upload document", "parameters": [{"type": "string", "name": "category", "in": "formData", "required": true}, {"type": "string", "name": "career_id", "in": "formData"}, {"type": "file", "name": "file", "in": "formData", "required": true}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/documents/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["Documents"], "summary": "Delete document", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/documents/{id}/download": {"get": {"security": [{"BearerAuth": []}], "tags": ["Documents"], "summary": "Download document", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}}},
        "/notices": {"get": {"tags": ["Notices"], "summary": "List notices", "parameters": [{"type": "string", "name": "category", "in": "query"}, {"type": "string", "name": "search", "in": "query"}, {"type": "integer", "name": "page", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/notices/{id}": {"get": {"tags": ["Notices"], "summary": "Get notice", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/dashboard": {"get": {"security": [{"BearerAuth": []}], "tags": ["Dashboard"], "summary": "My Dashboard", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/dashboard/user": {"get": {"security": [{"BearerAuth": []}], "tags": ["Dashboard"], "summary": "User Dashboard", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/dashboard/admin": {"get": {"security": [{"BearerAuth": []}], "tags": ["Dashboard"], "summary": "Admin Dashboard", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/admin/reviews": {"get": {"security": [{"BearerAuth": []}], "tags": ["Review"], "summary": "Review queue", "parameters": [{"type": "string", "name": "status", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/admin/reviews/{id}": {"put": {"security": [{"BearerAuth": []}], "tags": ["Review"], "summary": "Review career", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/services.ReviewInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/admin/certificates": {"get": {"security": [{"BearerAuth": []}], "tags": ["Admin"], "summary": "Pending certificate requests", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/admin/certificates/{id}/issue": {"post": {"security": [{"BearerAuth": []}], "tags": ["Admin"], "summary": "Issue certificate", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/services.IssueCertificateInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/admin/certificates/{id}/upload": {"post": {"security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "tags": ["Admin"], "summary": "Issue certificate with PDF upload", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "certificate_number", "in": "formData", "required": true}, {"type": "string", "name": "issue_date", "in": "formData"}, {"type": "file", "name": "file", "in": "formData", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/admin/notices": {"post": {"security": [{"BearerAuth": []}], "tags": ["Admin"], "summary": "Create notice", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/services.CreateNoticeInput"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/admin/users": {"get": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "List all users", "parameters": [{"type": "string", "name": "search", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}},
        "/admin/users/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Get user by ID", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Update user", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/services.UpdateUserByAdminInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        }
    },
    "definitions": {
        "domain.FieldError": {"type": "object", "properties": {"field": {"type": "string"}, "message": {"type": "string"}}},
        "response.Response": {"type": "object", "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "data": {}, "error": {"type": "string"}, "fields": {"type": "array", "items": {"$ref": "#/definitions/domain.FieldError"}}}},
        "services.RegisterInput": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}, "name": {"type": "string"}, "phone": {"type": "string"}, "user_type": {"type": "string", "enum": ["individual", "corporate"]}, "company_name": {"type": "string"}, "business_number": {"type": "string"}}},
        "services.LoginInput": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "services.UpdateProfileInput": {"type": "object", "properties": {"name": {"type": "string"}, "phone": {"type": "string"}, "user_type": {"type": "string"}, "company_name": {"type": "string"}, "business_number": {"type": "string"}}},
        "services.ChangePasswordInput": {"type": "object", "properties": {"old_password": {"type": "string"}, "new_password": {"type": "string"}}},
        "services.UpdateUserByAdminInput": {"type": "object", "properties": {"role": {"type": "string", "enum": ["USER", "REVIEWER", "ADMIN"]}, "is_active": {"type": "boolean"}}},
        "services.ProjectInput": {"type": "object", "properties": {"name": {"type": "string"}, "description": {"type": "string"}, "start_date": {"type": "string"}, "end_date": {"type": "string"}}},
        "services.CreateCareerInput": {"type": "object", "properties": {"company_name": {"type": "string"}, "business_number": {"type": "string"}, "position": {"type": "string"}, "department": {"type": "string"}, "start_date": {"type": "string"}, "end_date": {"type": "string"}, "is_current": {"type": "boolean"}, "job_category": {"type": "string", "enum": ["development", "analysis", "design", "test", "maintenance", "consulting", "management"]}, "job_description": {"type": "string"}, "technologies": {"type": "array", "items": {"type": "string"}}, "projects": {"type": "array", "items": {"$ref": "#/definitions/services.ProjectInput"}}, "submit": {"type": "boolean"}}},
        "services.UpdateCareerInput": {"type": "object", "properties": {"company_name": {"type": "string"}, "business_number": {"type": "string"}, "position": {"type": "string"}, "department": {"type": "string"}, "start_date": {"type": "string"}, "end_date": {"type": "string"}, "is_current": {"type": "boolean"}, "job_category": {"type": "string"}, "job_description": {"type": "string"}, "technologies": {"type": "array", "items": {"type": "string"}}, "projects": {"type": "array", "items": {"$ref": "#/definitions/services.ProjectInput"}}}},
        "services.RequestCertificateInput": {"type": "object", "properties": {"career_ids": {"type": "array", "items": {"type": "string"}}, "purpose": {"type": "string"}}},
        "services.IssueCertificateInput": {"type": "object", "properties": {"certificate_number": {"type": "string", "maxLength": 50}, "pdf_path": {"type": "string"}, "issue_date": {"type": "string"}}},
        "services.ReviewInput": {"type": "object", "properties": {"status": {"type": "string", "enum": ["submitted", "under_review", "approved", "rejected"]}, "comment": {"type": "string"}}},
        "services.CreateNoticeInput": {"type": "object", "properties": {"category": {"type": "string", "enum": ["system", "policy", "feature", "fee", "maintenance"]}, "title": {"type": "string"}, "content": {"type": "string"}, "is_important": {"type": "boolean"}, "publish_at": {"type": "string"}, "draft": {"type": "boolean"}}}
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
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "CareerHub API",
	Description:      "Career record, review and certificate issuance API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
