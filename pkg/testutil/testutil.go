// Package testutil provides helpers for handler tests: an in-memory
// database wired into the global connection, a router with the full
// middleware chain, and request/fixture helpers.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"sync"
	"testing"

	"backend_savanna/pkg/config"
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/routes"
	"backend_savanna/pkg/services"
	"backend_savanna/pkg/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var setupOnce sync.Once

// Setup points the application at an in-memory database and returns a
// router with all API routes mounted. Each call gets a fresh schema.
func Setup(t *testing.T) *gin.Engine {
	t.Helper()

	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		cfg := Config()
		config.AppConfig = &cfg
	})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database handle: %v", err)
	}
	// A second connection to :memory: would see an empty database.
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	database.DB = db
	t.Cleanup(func() { sqlDB.Close() })

	router := gin.New()
	store := cookie.NewStore([]byte(config.AppConfig.SessionSecret))
	router.Use(sessions.Sessions("session", store))

	api := router.Group("/api")
	routes.Register(api)

	return router
}

// Config returns the configuration used by tests.
func Config() config.Config {
	return config.Config{
		Port:          "0",
		Environment:   "test",
		DatabaseURL:   ":memory:",
		JWTSecret:     "test-secret",
		JWTExpiresIn:  "1d",
		SessionSecret: "test-session",
		CookieSecure:  "false",
	}
}

// CreateUser inserts an active user with the given role. The password is
// always "password123".
func CreateUser(t *testing.T, email string, role models.Role) models.User {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		Email:     email,
		Password:  hash,
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
		IsActive:  true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

// CreateMeal inserts an available meal.
func CreateMeal(t *testing.T, name string, price float64) models.Meal {
	t.Helper()

	meal := models.Meal{
		Name:        name,
		Price:       price,
		IsAvailable: true,
		Category:    models.CategoryMains,
	}
	if err := database.DB.Create(&meal).Error; err != nil {
		t.Fatalf("failed to create meal %s: %v", name, err)
	}
	return meal
}

// TokenFor issues a signed token for the user.
func TokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

// Request performs a JSON request against the router. A non-nil body is
// marshalled; a non-empty token is sent as a bearer credential.
func Request(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// MultipartRequest performs a multipart/form-data request with the given
// fields and an optional file part.
func MultipartRequest(t *testing.T, router *gin.Engine, method, path string, fields map[string]string, fileField, fileName string, fileData []byte, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write field %s: %v", key, err)
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}
		if _, err := part.Write(fileData); err != nil {
			t.Fatalf("failed to write file data: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to finalize multipart body: %v", err)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// DecodeBody unmarshals a JSON response body into out.
func DecodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

// FakeStore is an in-memory object store standing in for GCS.
type FakeStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Deleted []string
}

// UseFakeStore swaps the global object store for an in-memory fake and
// restores the previous store when the test ends.
func UseFakeStore(t *testing.T) *FakeStore {
	t.Helper()

	fake := &FakeStore{Objects: make(map[string][]byte)}
	previous := services.Store
	services.Store = fake
	t.Cleanup(func() { services.Store = previous })
	return fake
}

func (s *FakeStore) Upload(ctx context.Context, data []byte, fileName, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	url := fmt.Sprintf("https://storage.googleapis.com/test-bucket/%d-%s", len(s.Objects), fileName)
	s.Objects[url] = data
	return url, nil
}

func (s *FakeStore) Delete(ctx context.Context, objectURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.Objects, objectURL)
	s.Deleted = append(s.Deleted, objectURL)
	return nil
}
