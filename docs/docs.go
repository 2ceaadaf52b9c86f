// Package docs is generated by swag. Regenerate with:
//
//	swag init -g cmd/server/main.go
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
        "/api/v1/contactmomenten": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contactmomenten"
                ],
                "summary": "List contactmomenten",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.contactMomentResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contactmomenten"
                ],
                "summary": "Create a contactmoment",
                "parameters": [
                    {
                        "description": "ContactMoment",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.contactMomentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.contactMomentResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                }
            }
        },
        "/api/v1/contactmomenten/{uuid}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contactmomenten"
                ],
                "summary": "Get a contactmoment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ContactMoment UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.contactMomentResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contactmomenten"
                ],
                "summary": "Update a contactmoment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ContactMoment UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "ContactMoment",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.contactMomentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.contactMomentResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "contactmomenten"
                ],
                "summary": "Delete a contactmoment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ContactMoment UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contactmomenten"
                ],
                "summary": "Update a contactmoment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ContactMoment UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "ContactMoment",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.contactMomentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.contactMomentResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/v1/klanten": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "klanten"
                ],
                "summary": "List klanten",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.klantResponse"
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Stores the klant and, when subjectType and subjectIdentificatie are given, its subject with verblijfsadres and subVerblijfBuitenland.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "klanten"
                ],
                "summary": "Create a klant",
                "parameters": [
                    {
                        "description": "Klant",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.klantRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.klantResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                }
            }
        },
        "/api/v1/klanten/{uuid}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "klanten"
                ],
                "summary": "Get a klant",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Klant UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.klantResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "PATCH only changes the given fields. A stored subjectType cannot be changed.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "klanten"
                ],
                "summary": "Update a klant",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Klant UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Klant",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.klantRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.klantResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "klanten"
                ],
                "summary": "Delete a klant and its subject",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Klant UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "PATCH only changes the given fields. A stored subjectType cannot be changed.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "klanten"
                ],
                "summary": "Update a klant",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Klant UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Klant",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.klantRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.klantResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/v1/objectcontactmomenten": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contactmomenten"
                ],
                "summary": "List objectcontactmomenten",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Object URL",
                        "name": "object",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "ContactMoment URL",
                        "name": "contactmoment",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.objectContactMomentResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The zaken API must already hold the matching zaakcontactmoment.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contactmomenten"
                ],
                "summary": "Create an objectcontactmoment",
                "parameters": [
                    {
                        "description": "ObjectContactMoment",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.objectContactMomentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.objectContactMomentResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                }
            }
        },
        "/api/v1/objectcontactmomenten/{uuid}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contactmomenten"
                ],
                "summary": "Get an objectcontactmoment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ObjectContactMoment UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.objectContactMomentResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Refused while the zaken API still holds the zaakcontactmoment.",
                "tags": [
                    "contactmomenten"
                ],
                "summary": "Delete an objectcontactmoment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ObjectContactMoment UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/v1/objectverzoeken": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "List objectverzoeken",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Object URL",
                        "name": "object",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Verzoek URL",
                        "name": "verzoek",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.objectVerzoekResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Create an objectverzoek",
                "parameters": [
                    {
                        "description": "ObjectVerzoek",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.objectVerzoekRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.objectVerzoekResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                }
            }
        },
        "/api/v1/objectverzoeken/{uuid}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Get an objectverzoek",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ObjectVerzoek UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.objectVerzoekResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Delete an objectverzoek",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ObjectVerzoek UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/v1/verzoekcontactmomenten": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "List verzoekcontactmomenten",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Verzoek URL",
                        "name": "verzoek",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "ContactMoment URL",
                        "name": "contactmoment",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.verzoekContactMomentResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Link a contactmoment to a verzoek",
                "parameters": [
                    {
                        "description": "VerzoekContactMoment",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.verzoekContactMomentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.verzoekContactMomentResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                }
            }
        },
        "/api/v1/verzoekcontactmomenten/{uuid}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Get a verzoekcontactmoment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "VerzoekContactMoment UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.verzoekContactMomentResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Delete a verzoekcontactmoment",
                "parameters": [
                    {
                        "type": "string",
                        "description": "VerzoekContactMoment UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/v1/verzoeken": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "List verzoeken",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.verzoekResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "An empty identificatie is generated as VERZOEK-<year>-<sequence>.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Create a verzoek",
                "parameters": [
                    {
                        "description": "Verzoek",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.verzoekRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.verzoekResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                }
            }
        },
        "/api/v1/verzoeken/{uuid}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Get a verzoek",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Verzoek UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.verzoekResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Update a verzoek",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Verzoek UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Verzoek",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.verzoekRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.verzoekResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Delete a verzoek and its links",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Verzoek UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Update a verzoek",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Verzoek UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Verzoek",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.verzoekRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.verzoekResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/v1/verzoekinformatieobjecten": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "List verzoekinformatieobjecten",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Verzoek URL",
                        "name": "verzoek",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Informatieobject URL",
                        "name": "informatieobject",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.verzoekInformatieObjectResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The objectinformatieobject is created in the documenten API as well.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Link an informatieobject to a verzoek",
                "parameters": [
                    {
                        "description": "VerzoekInformatieObject",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.verzoekInformatieObjectRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.verzoekInformatieObjectResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                }
            }
        },
        "/api/v1/verzoekinformatieobjecten/{uuid}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Get a verzoekinformatieobject",
                "parameters": [
                    {
                        "type": "string",
                        "description": "VerzoekInformatieObject UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.verzoekInformatieObjectResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Delete a verzoekinformatieobject",
                "parameters": [
                    {
                        "type": "string",
                        "description": "VerzoekInformatieObject UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/v1/verzoekproducten": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "List verzoekproducten",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Verzoek URL",
                        "name": "verzoek",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Product URL",
                        "name": "product",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.verzoekProductResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Either product or productIdentificatie.code is required.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Link a product to a verzoek",
                "parameters": [
                    {
                        "description": "VerzoekProduct",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.verzoekProductRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.verzoekProductResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                }
            }
        },
        "/api/v1/verzoekproducten/{uuid}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Get a verzoekproduct",
                "parameters": [
                    {
                        "type": "string",
                        "description": "VerzoekProduct UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.verzoekProductResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "verzoeken"
                ],
                "summary": "Delete a verzoekproduct",
                "parameters": [
                    {
                        "type": "string",
                        "description": "VerzoekProduct UUID",
                        "name": "uuid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/auth/applicaties": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Register an applicatie",
                "parameters": [
                    {
                        "description": "Applicatie",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.registerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Applicatie"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/auth/token": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Issue a token",
                "parameters": [
                    {
                        "description": "Client credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.tokenRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.tokenResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.readinessResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.readinessResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Applicatie": {
            "type": "object",
            "properties": {
                "clientId": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "scopes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.Medewerker": {
            "type": "object",
            "properties": {
                "achternaam": {
                    "type": "string"
                },
                "identificatie": {
                    "type": "string"
                },
                "voorletters": {
                    "type": "string"
                },
                "voorvoegselAchternaam": {
                    "type": "string"
                }
            }
        },
        "handler.contactMomentRequest": {
            "type": "object",
            "required": [
                "bronorganisatie"
            ],
            "properties": {
                "bronorganisatie": {
                    "type": "string"
                },
                "initiatiefnemer": {
                    "type": "string",
                    "enum": [
                        "gemeente",
                        "klant"
                    ]
                },
                "interactiedatum": {
                    "type": "string"
                },
                "kanaal": {
                    "type": "string",
                    "maxLength": 50
                },
                "klant": {
                    "type": "string",
                    "maxLength": 1000
                },
                "medewerker": {
                    "type": "string",
                    "maxLength": 1000
                },
                "medewerkerIdentificatie": {
                    "$ref": "#/definitions/handler.medewerkerRequest"
                },
                "onderwerpLinks": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "tekst": {
                    "type": "string"
                },
                "voorkeurskanaal": {
                    "type": "string",
                    "maxLength": 50
                },
                "voorkeurstaal": {
                    "type": "string",
                    "maxLength": 3
                },
                "zaak": {
                    "type": "string",
                    "maxLength": 1000
                }
            }
        },
        "handler.contactMomentResponse": {
            "type": "object",
            "properties": {
                "bronorganisatie": {
                    "type": "string"
                },
                "initiatiefnemer": {
                    "type": "string"
                },
                "interactiedatum": {
                    "type": "string"
                },
                "kanaal": {
                    "type": "string"
                },
                "klant": {
                    "type": "string"
                },
                "medewerker": {
                    "type": "string"
                },
                "medewerkerIdentificatie": {
                    "$ref": "#/definitions/domain.Medewerker"
                },
                "onderwerpLinks": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "tekst": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "voorkeurskanaal": {
                    "type": "string"
                },
                "voorkeurstaal": {
                    "type": "string"
                },
                "zaak": {
                    "type": "string"
                }
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "handler.klantRequest": {
            "type": "object",
            "properties": {
                "achternaam": {
                    "type": "string",
                    "maxLength": 200
                },
                "adres": {
                    "type": "string",
                    "maxLength": 1000
                },
                "bronorganisatie": {
                    "type": "string"
                },
                "emailadres": {
                    "type": "string",
                    "maxLength": 254
                },
                "functie": {
                    "type": "string",
                    "maxLength": 200
                },
                "subject": {
                    "type": "string",
                    "maxLength": 1000
                },
                "subjectIdentificatie": {
                    "type": "object"
                },
                "subjectType": {
                    "type": "string"
                },
                "telefoonnummer": {
                    "type": "string",
                    "maxLength": 20
                },
                "voornaam": {
                    "type": "string",
                    "maxLength": 200
                }
            }
        },
        "handler.klantResponse": {
            "type": "object",
            "properties": {
                "achternaam": {
                    "type": "string"
                },
                "adres": {
                    "type": "string"
                },
                "bronorganisatie": {
                    "type": "string"
                },
                "emailadres": {
                    "type": "string"
                },
                "functie": {
                    "type": "string"
                },
                "subject": {
                    "type": "string"
                },
                "subjectIdentificatie": {
                    "type": "object"
                },
                "subjectType": {
                    "type": "string"
                },
                "telefoonnummer": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "voornaam": {
                    "type": "string"
                }
            }
        },
        "handler.medewerkerRequest": {
            "type": "object",
            "properties": {
                "achternaam": {
                    "type": "string",
                    "maxLength": 200
                },
                "identificatie": {
                    "type": "string",
                    "maxLength": 24
                },
                "voorletters": {
                    "type": "string",
                    "maxLength": 20
                },
                "voorvoegselAchternaam": {
                    "type": "string",
                    "maxLength": 10
                }
            }
        },
        "handler.objectContactMomentRequest": {
            "type": "object",
            "required": [
                "contactmoment",
                "object",
                "objectType"
            ],
            "properties": {
                "contactmoment": {
                    "type": "string"
                },
                "object": {
                    "type": "string",
                    "maxLength": 1000
                },
                "objectType": {
                    "type": "string",
                    "enum": [
                        "zaak"
                    ]
                }
            }
        },
        "handler.objectContactMomentResponse": {
            "type": "object",
            "properties": {
                "contactmoment": {
                    "type": "string"
                },
                "object": {
                    "type": "string"
                },
                "objectType": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "handler.objectVerzoekRequest": {
            "type": "object",
            "required": [
                "object",
                "objectType",
                "verzoek"
            ],
            "properties": {
                "object": {
                    "type": "string",
                    "maxLength": 1000
                },
                "objectType": {
                    "type": "string",
                    "enum": [
                        "zaak"
                    ]
                },
                "verzoek": {
                    "type": "string"
                }
            }
        },
        "handler.objectVerzoekResponse": {
            "type": "object",
            "properties": {
                "object": {
                    "type": "string"
                },
                "objectType": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "verzoek": {
                    "type": "string"
                }
            }
        },
        "handler.productIdentificatie": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "maxLength": 20
                }
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "dependencies": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/handler.dependencyStatus"
                    }
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": [
                "clientId",
                "scopes",
                "secret"
            ],
            "properties": {
                "clientId": {
                    "type": "string",
                    "maxLength": 255
                },
                "label": {
                    "type": "string",
                    "maxLength": 100
                },
                "scopes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "secret": {
                    "type": "string"
                }
            }
        },
        "handler.tokenRequest": {
            "type": "object",
            "required": [
                "clientId",
                "secret"
            ],
            "properties": {
                "clientId": {
                    "type": "string"
                },
                "secret": {
                    "type": "string"
                }
            }
        },
        "handler.tokenResponse": {
            "type": "object",
            "properties": {
                "applicatie": {
                    "$ref": "#/definitions/domain.Applicatie"
                },
                "token": {
                    "type": "string"
                }
            }
        },
        "handler.verzoekContactMomentRequest": {
            "type": "object",
            "required": [
                "contactmoment",
                "verzoek"
            ],
            "properties": {
                "contactmoment": {
                    "type": "string"
                },
                "verzoek": {
                    "type": "string"
                }
            }
        },
        "handler.verzoekContactMomentResponse": {
            "type": "object",
            "properties": {
                "contactmoment": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "verzoek": {
                    "type": "string"
                }
            }
        },
        "handler.verzoekInformatieObjectRequest": {
            "type": "object",
            "required": [
                "informatieobject",
                "verzoek"
            ],
            "properties": {
                "informatieobject": {
                    "type": "string",
                    "maxLength": 1000
                },
                "verzoek": {
                    "type": "string"
                }
            }
        },
        "handler.verzoekInformatieObjectResponse": {
            "type": "object",
            "properties": {
                "informatieobject": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "verzoek": {
                    "type": "string"
                }
            }
        },
        "handler.verzoekProductRequest": {
            "type": "object",
            "required": [
                "verzoek"
            ],
            "properties": {
                "product": {
                    "type": "string",
                    "maxLength": 1000
                },
                "productIdentificatie": {
                    "$ref": "#/definitions/handler.productIdentificatie"
                },
                "verzoek": {
                    "type": "string"
                }
            }
        },
        "handler.verzoekProductResponse": {
            "type": "object",
            "properties": {
                "product": {
                    "type": "string"
                },
                "productIdentificatie": {
                    "$ref": "#/definitions/handler.productIdentificatie"
                },
                "url": {
                    "type": "string"
                },
                "verzoek": {
                    "type": "string"
                }
            }
        },
        "handler.verzoekRequest": {
            "type": "object",
            "required": [
                "bronorganisatie"
            ],
            "properties": {
                "bronorganisatie": {
                    "type": "string"
                },
                "externeIdentificatie": {
                    "type": "string",
                    "maxLength": 40
                },
                "identificatie": {
                    "type": "string",
                    "maxLength": 40
                },
                "interactiedatum": {
                    "type": "string"
                },
                "klant": {
                    "type": "string",
                    "maxLength": 1000
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "ontvangen",
                        "in_behandeling",
                        "afgehandeld",
                        "afgewezen",
                        "ingetrokken"
                    ]
                },
                "tekst": {
                    "type": "string"
                },
                "voorkeurskanaal": {
                    "type": "string",
                    "maxLength": 50
                }
            }
        },
        "handler.verzoekResponse": {
            "type": "object",
            "properties": {
                "bronorganisatie": {
                    "type": "string"
                },
                "externeIdentificatie": {
                    "type": "string"
                },
                "identificatie": {
                    "type": "string"
                },
                "interactiedatum": {
                    "type": "string"
                },
                "klant": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "tekst": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "voorkeurskanaal": {
                    "type": "string"
                }
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
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Klantinteracties API",
	Description:      "Klanten, contactmomenten and verzoeken with their relations to zaken and documenten.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
