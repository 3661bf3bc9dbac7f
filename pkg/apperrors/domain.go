package apperrors

import (
	"net/http"
)

/*
Предопределенные ошибки предметной области.
Сообщения совпадают с теми, что ожидают клиенты API.
*/

// =========================================================================
// Auth
// =========================================================================

// ErrEmailAlreadyExists - email уже зарегистрирован
var ErrEmailAlreadyExists = NewConflictError("auth", "Email already exists")

// ErrInvalidUser - пользователь с таким email не найден при логине
var ErrInvalidUser = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid User",
	http.StatusUnauthorized,
)

// ErrInvalidPassword - пароль не совпал с хешем
var ErrInvalidPassword = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid Password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - токен отсутствует, поврежден или просрочен
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrMissingToken - нет заголовка Authorization: Bearer
var ErrMissingToken = New(
	CodeUnauthorized,
	"auth",
	"Authorization header missing or invalid",
	http.StatusUnauthorized,
)

// ErrRateLimited - слишком много запросов с одного адреса
var ErrRateLimited = New(
	CodeRateLimited,
	"request",
	"Too many requests",
	http.StatusTooManyRequests,
)

// ErrInsufficientRole - роль из токена не допускается на маршрут
var ErrInsufficientRole = New(
	CodeForbidden,
	"auth",
	"Access denied: insufficient role",
	http.StatusForbidden,
)

// =========================================================================
// User
// =========================================================================

var ErrUserNotFound = NewNotFoundError("user", "User not found")

// =========================================================================
// Job
// =========================================================================

var ErrJobNotFound = NewNotFoundError("job", "Job not found")

var ErrOnlyEmployersCreateJobs = New(
	CodeForbidden,
	"job",
	"Forbidden: Only employers can create jobs",
	http.StatusForbidden,
)

var ErrNotJobOwnerUpdate = New(
	CodeForbidden,
	"job",
	"Forbidden: You can only update your own jobs",
	http.StatusForbidden,
)

var ErrNotJobOwnerDelete = New(
	CodeForbidden,
	"job",
	"Forbidden: You can only delete your own jobs",
	http.StatusForbidden,
)

// =========================================================================
// Application
// =========================================================================

var ErrApplicationNotFound = NewNotFoundError("application", "Application not found")

var ErrAlreadyApplied = NewConflictError("application", "You have already applied for this job")

var ErrOnlyJobSeekersApply = New(
	CodeForbidden,
	"application",
	"Only job seekers can apply for jobs",
	http.StatusForbidden,
)

var ErrNotApplicationOwner = New(
	CodeForbidden,
	"application",
	"Forbidden: You can only update your own job applications",
	http.StatusForbidden,
)

// ErrInvalidApplicationStatus - статус вне PENDING/ACCEPTED/REJECTED
var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"application",
	"Invalid application status",
	http.StatusBadRequest,
)

// =========================================================================
// Profile
// =========================================================================

var ErrInvalidRole = New(
	CodeInvalidRole,
	"profile",
	"Invalid role",
	http.StatusBadRequest,
)

var ErrEmployerProfileNotFound = NewNotFoundError("profile", "Employer profile not found")

var ErrJobSeekerProfileNotFound = NewNotFoundError("profile", "Job seeker profile not found")

var ErrEmployerProfileExists = NewConflictError("profile", "Employer profile already exists")

var ErrJobSeekerProfileExists = NewConflictError("profile", "Job seeker profile already exists")

// ErrResumeOnlyForJobSeekers - резюме загружает только соискатель
var ErrResumeOnlyForJobSeekers = New(
	CodeForbidden,
	"profile",
	"Only job seekers can upload a resume",
	http.StatusForbidden,
)

// =========================================================================
// Uploads
// =========================================================================

// ErrFileTooLarge - файл превышает допустимый размер
var ErrFileTooLarge = New(
	CodeValidationFailed,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidFileType - расширение/MIME файла не разрешены
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// ErrStorageUnavailable - ошибка внешнего хранилища
func ErrStorageUnavailable(err error) *AppError {
	return Wrap(err, CodeStorageError, "storage", "File storage is unavailable", http.StatusBadGateway)
}
