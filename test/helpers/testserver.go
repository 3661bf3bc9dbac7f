package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"jobboard_backend/internal/app"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var loggerOnce sync.Once

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Config *config.Config
}

// Option меняет конфиг тестового сервера до сборки роутера
type Option func(cfg *config.Config)

// WithRateLimit включает ограничение частоты запросов на /api/auth
func WithRateLimit(rps float64, burst int) Option {
	return func(cfg *config.Config) {
		cfg.RateLimit.RPS = rps
		cfg.RateLimit.Burst = burst
	}
}

// WithMaxResumeSize задает лимит размера резюме
func WithMaxResumeSize(size int64) Option {
	return func(cfg *config.Config) {
		cfg.Upload.MaxResumeSize = size
	}
}

func testConfig(t *testing.T) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Server.LogLevel = "error"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = TestDSN()
	cfg.JWT.Secret = "test_secret_key_for_integration_tests"
	cfg.JWT.TTL = 60
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/uploads"
	cfg.Upload.MaxResumeSize = 1 << 20
	cfg.CORS.AllowedOrigins = []string{"*"}
	return cfg
}

// NewTestServer поднимает полноценное приложение на httptest-сервере
// со своей изолированной базой и локальным хранилищем.
func NewTestServer(t *testing.T, opts ...Option) *TestServer {
	t.Helper()

	cfg := testConfig(t)
	for _, opt := range opts {
		opt(cfg)
	}
	loggerOnce.Do(func() {
		logger.InitWithLevel(cfg.Server.Env, cfg.Server.LogLevel)
	})

	db := NewTestDB(t, cfg.Database.DSN)

	router, err := app.SetupRouter(cfg, db)
	if err != nil {
		t.Fatalf("Не удалось собрать роутер: %v", err)
	}

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		DB:     db,
		Config: cfg,
	}
}

// SendRequest отправляет JSON-запрос и возвращает ответ и тело строкой
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.do(t, req, token)
}

// UploadFile отправляет multipart/form-data с одним файлом в поле field
func (ts *TestServer) UploadFile(t *testing.T, path, token, field, fileName string, content []byte) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, fileName)
	if err != nil {
		t.Fatalf("Ошибка создания multipart-части: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Ошибка записи файла в multipart: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Ошибка закрытия multipart: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return ts.do(t, req, token)
}

func (ts *TestServer) do(t *testing.T, req *http.Request, token string) (*http.Response, string) {
	t.Helper()

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	return res, string(resBodyBytes)
}

// DecodeJSON разбирает тело ответа в out
func DecodeJSON(t *testing.T, body string, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), out), "Не удалось распарсить JSON: %s", body)
}

var emailCounter int64

// UniqueEmail - уникальный email для теста
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, atomic.AddInt64(&emailCounter, 1))
}

// CreateAndLoginUser регистрирует пользователя через API и логинит его
func (ts *TestServer) CreateAndLoginUser(t *testing.T, name, email, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	signupBody := map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/auth/signup", "", signupBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Регистрация должна быть успешной. Ответ: "+bodyStr)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Data  models.User `json:"data"`
		Token string      `json:"token"`
	}
	DecodeJSON(t, bodyStr, &loginResponse)
	require.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	return loginResponse.Token, &loginResponse.Data
}

// CreateAndLoginEmployer создает работодателя с уникальным email
func (ts *TestServer) CreateAndLoginEmployer(t *testing.T) (string, *models.User) {
	return ts.CreateAndLoginUser(t, "Test Employer", UniqueEmail("employer"), "password123", models.UserRoleEmployer)
}

// CreateAndLoginJobSeeker создает соискателя с уникальным email
func (ts *TestServer) CreateAndLoginJobSeeker(t *testing.T) (string, *models.User) {
	return ts.CreateAndLoginUser(t, "Test Seeker", UniqueEmail("seeker"), "password123", models.UserRoleJobSeeker)
}

// CreateJob создает вакансию через API
func (ts *TestServer) CreateJob(t *testing.T, token, title string) *models.Job {
	t.Helper()

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/job/create", token, map[string]interface{}{
		"title":       title,
		"description": "Build and run backend services",
		"company":     "Acme",
		"location":    "Remote",
		"category":    "Engineering",
		"salary":      100000,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Создание вакансии: "+bodyStr)

	var job models.Job
	DecodeJSON(t, bodyStr, &job)
	return &job
}
