// Package docs содержит Swagger-спецификацию API, собранную по аннотациям хэндлеров
// (формат swaggo/swag; пересобирается командой swag init -g cmd/web/main.go).
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
		"/api/application/apply/{id}": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"applications"
				],
				"summary": "Откликнуться на вакансию",
				"parameters": [
					{
						"type": "integer",
						"description": "ID вакансии",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Application"
						}
					},
					"400": {
						"description": "Повторный отклик",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					},
					"403": {
						"description": "Только соискатель",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					},
					"404": {
						"description": "Job not found",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/application/job/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "С данными соискателя и его профилем",
				"produces": [
					"application/json"
				],
				"tags": [
					"applications"
				],
				"summary": "Отклики на вакансию",
				"parameters": [
					{
						"type": "integer",
						"description": "ID вакансии",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Application"
							}
						}
					},
					"404": {
						"description": "Job not found",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/application/myapplies": {
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
					"applications"
				],
				"summary": "Мои отклики",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Application"
							}
						}
					}
				}
			}
		},
		"/api/application/status/{id}": {
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Только работодатель, владеющий вакансией. Соискатель получает письмо.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"applications"
				],
				"summary": "Изменить статус отклика",
				"parameters": [
					{
						"type": "integer",
						"description": "ID отклика",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "PENDING | ACCEPTED | REJECTED",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdateApplicationStatusRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Application"
						}
					},
					"400": {
						"description": "Invalid application status",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					},
					"404": {
						"description": "Application not found",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/auth/login": {
			"post": {
				"description": "Возвращает пользователя и токен, дублирует токен в http-only cookie",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Вход",
				"parameters": [
					{
						"description": "Email и пароль",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.LoginResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					},
					"401": {
						"description": "Invalid User / Invalid Password",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/auth/logout": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Выход",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/auth/signup": {
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
				"summary": "Регистрация пользователя",
				"parameters": [
					{
						"description": "Данные пользователя",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SignupRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"400": {
						"description": "Ошибка валидации или email занят",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/job": {
			"get": {
				"description": "Сначала новые",
				"produces": [
					"application/json"
				],
				"tags": [
					"jobs"
				],
				"summary": "Все вакансии",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Job"
							}
						}
					}
				}
			}
		},
		"/api/job/create": {
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
					"jobs"
				],
				"summary": "Создать вакансию",
				"parameters": [
					{
						"description": "Вакансия",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.JobRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Job"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					},
					"403": {
						"description": "Только работодатель",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/job/employer": {
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
					"jobs"
				],
				"summary": "Вакансии текущего работодателя",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Job"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/job/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"jobs"
				],
				"summary": "Вакансия по id",
				"parameters": [
					{
						"type": "integer",
						"description": "ID вакансии",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Job"
						}
					},
					"404": {
						"description": "Job not found",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
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
					"jobs"
				],
				"summary": "Обновить вакансию",
				"parameters": [
					{
						"type": "integer",
						"description": "ID вакансии",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Вакансия",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.JobRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Job"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					},
					"403": {
						"description": "Чужая вакансия",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					},
					"404": {
						"description": "Job not found",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
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
				"description": "Отклики на вакансию удаляются вместе с ней",
				"produces": [
					"application/json"
				],
				"tags": [
					"jobs"
				],
				"summary": "Удалить вакансию",
				"parameters": [
					{
						"type": "integer",
						"description": "ID вакансии",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/profile": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Тип профиля определяется ролью: EMPLOYER -> EmployerProfile, JOB_SEEKER -> JobSeekerProfile",
				"produces": [
					"application/json"
				],
				"tags": [
					"profile"
				],
				"summary": "Профиль текущего пользователя",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.JobSeekerProfile"
						}
					},
					"400": {
						"description": "Invalid role",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
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
				"description": "Тело зависит от роли: dto.EmployerProfileRequest или dto.JobSeekerProfileRequest",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"profile"
				],
				"summary": "Создать профиль",
				"parameters": [
					{
						"description": "Профиль работодателя (для JOB_SEEKER - dto.JobSeekerProfileRequest)",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.EmployerProfileRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.EmployerProfile"
						}
					},
					"400": {
						"description": "Профиль уже существует",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
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
					"profile"
				],
				"summary": "Обновить профиль",
				"parameters": [
					{
						"description": "Профиль работодателя (для JOB_SEEKER - dto.JobSeekerProfileRequest)",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.EmployerProfileRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.EmployerProfile"
						}
					},
					"404": {
						"description": "Профиль не найден",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/profile/resume": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "pdf, doc или docx. URL файла записывается в поле resume профиля соискателя.",
				"consumes": [
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"profile"
				],
				"summary": "Загрузить файл резюме",
				"parameters": [
					{
						"type": "file",
						"description": "Файл резюме",
						"name": "file",
						"in": "formData",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.JobSeekerProfile"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					},
					"404": {
						"description": "Job seeker profile not found",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					},
					"413": {
						"description": "Request Entity Too Large",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					},
					"415": {
						"description": "Unsupported Media Type",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/user": {
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
					"user"
				],
				"summary": "Текущий пользователь",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/apperrors.ErrorResponse"
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
					"system"
				],
				"summary": "Проверка состояния",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		}
	},
	"definitions": {
		"apperrors.AppError": {
			"type": "object",
			"properties": {
				"code": {
					"$ref": "#/definitions/apperrors.ErrorCode"
				},
				"details": {},
				"domain": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"apperrors.ErrorCode": {
			"type": "string",
			"enum": [
				"INTERNAL_ERROR",
				"DATABASE_ERROR",
				"STORAGE_ERROR",
				"NOT_FOUND",
				"ALREADY_EXISTS",
				"VALIDATION_FAILED",
				"BAD_REQUEST",
				"INVALID_STATUS",
				"INVALID_ROLE",
				"RATE_LIMITED",
				"UNAUTHORIZED",
				"FORBIDDEN",
				"INVALID_CREDENTIALS",
				"INVALID_TOKEN"
			],
			"x-enum-varnames": [
				"CodeInternalError",
				"CodeDatabaseError",
				"CodeStorageError",
				"CodeNotFound",
				"CodeAlreadyExists",
				"CodeValidationFailed",
				"CodeBadRequest",
				"CodeInvalidStatus",
				"CodeInvalidRole",
				"CodeRateLimited",
				"CodeUnauthorized",
				"CodeForbidden",
				"CodeInvalidCredentials",
				"CodeInvalidToken"
			]
		},
		"apperrors.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"$ref": "#/definitions/apperrors.AppError"
				}
			}
		},
		"dto.EmployerProfileRequest": {
			"type": "object",
			"required": [
				"companyName"
			],
			"properties": {
				"companyName": {
					"type": "string",
					"maxLength": 255
				},
				"companyWebsite": {
					"type": "string"
				}
			}
		},
		"dto.JobRequest": {
			"type": "object",
			"required": [
				"category",
				"company",
				"description",
				"location",
				"salary",
				"title"
			],
			"properties": {
				"category": {
					"type": "string",
					"maxLength": 100
				},
				"company": {
					"type": "string",
					"maxLength": 255
				},
				"description": {
					"type": "string"
				},
				"location": {
					"type": "string",
					"maxLength": 255
				},
				"salary": {
					"type": "number"
				},
				"title": {
					"type": "string",
					"maxLength": 255
				}
			}
		},
		"dto.LoginRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"dto.LoginResponse": {
			"type": "object",
			"properties": {
				"data": {
					"$ref": "#/definitions/models.User"
				},
				"token": {
					"type": "string"
				}
			}
		},
		"dto.SignupRequest": {
			"type": "object",
			"required": [
				"email",
				"name",
				"password",
				"role"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"imagePath": {
					"type": "string",
					"maxLength": 2048
				},
				"name": {
					"type": "string"
				},
				"password": {
					"type": "string",
					"minLength": 6
				},
				"role": {
					"$ref": "#/definitions/models.UserRole"
				}
			}
		},
		"dto.UpdateApplicationStatusRequest": {
			"type": "object",
			"required": [
				"status"
			],
			"properties": {
				"status": {
					"$ref": "#/definitions/models.ApplicationStatus"
				}
			}
		},
		"models.Application": {
			"type": "object",
			"properties": {
				"createdAt": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"job": {
					"$ref": "#/definitions/models.Job"
				},
				"jobId": {
					"type": "integer"
				},
				"jobSeeker": {
					"$ref": "#/definitions/models.User"
				},
				"jobSeekerId": {
					"type": "integer"
				},
				"status": {
					"$ref": "#/definitions/models.ApplicationStatus"
				},
				"updatedAt": {
					"type": "string"
				}
			}
		},
		"models.ApplicationStatus": {
			"type": "string",
			"enum": [
				"PENDING",
				"ACCEPTED",
				"REJECTED"
			],
			"x-enum-varnames": [
				"ApplicationStatusPending",
				"ApplicationStatusAccepted",
				"ApplicationStatusRejected"
			]
		},
		"models.EmployerProfile": {
			"type": "object",
			"properties": {
				"companyName": {
					"type": "string"
				},
				"companyWebsite": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"updatedAt": {
					"type": "string"
				},
				"userId": {
					"type": "integer"
				}
			}
		},
		"models.Job": {
			"type": "object",
			"properties": {
				"category": {
					"type": "string"
				},
				"company": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"employerId": {
					"type": "integer"
				},
				"id": {
					"type": "integer"
				},
				"location": {
					"type": "string"
				},
				"salary": {
					"type": "number"
				},
				"title": {
					"type": "string"
				},
				"updatedAt": {
					"type": "string"
				}
			}
		},
		"models.JobSeekerProfile": {
			"type": "object",
			"properties": {
				"createdAt": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"resume": {
					"type": "string"
				},
				"skills": {
					"type": "string"
				},
				"updatedAt": {
					"type": "string"
				},
				"userId": {
					"type": "integer"
				}
			}
		},
		"models.User": {
			"type": "object",
			"properties": {
				"createdAt": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"employerProfile": {
					"$ref": "#/definitions/models.EmployerProfile"
				},
				"id": {
					"type": "integer"
				},
				"imagePath": {
					"type": "string"
				},
				"jobSeekerProfile": {
					"$ref": "#/definitions/models.JobSeekerProfile"
				},
				"name": {
					"type": "string"
				},
				"role": {
					"$ref": "#/definitions/models.UserRole"
				},
				"updatedAt": {
					"type": "string"
				}
			}
		},
		"models.UserRole": {
			"type": "string",
			"enum": [
				"EMPLOYER",
				"JOB_SEEKER"
			],
			"x-enum-varnames": [
				"UserRoleEmployer",
				"UserRoleJobSeeker"
			]
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:4000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Job Board API",
	Description:      "API для доски вакансий: работодатели, соискатели, отклики и профили.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
