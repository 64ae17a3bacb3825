package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/services"
	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

// newTestFactory opens an isolated in-memory database migrated to the
// current schema.
func newTestFactory(t *testing.T) *database.Factory {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return database.NewFactory(db)
}

// newTestServer stands up the full route table over an isolated in-memory
// database.
func newTestServer(t *testing.T) (*httptest.Server, services.AuthService) {
	t.Helper()
	auth := services.NewAuthService(testSecret, time.Hour)
	factory := newTestFactory(t)
	handlers := initializeHandlers(factory, auth, time.Now())

	router := chi.NewRouter()
	setupRoutes(router, handlers, newAuthMiddleware(auth))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, auth
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil.
func doJSON(t *testing.T, method, url string, body any, out any, headers ...string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("decode response %q: %v", string(raw), err)
		}
	}
	return resp
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// registerUser creates an account through the public endpoint and returns
// its id.
func registerUser(t *testing.T, baseURL, email string) int64 {
	t.Helper()
	var user struct {
		ID int64 `json:"id"`
	}
	resp := doJSON(t, http.MethodPost, baseURL+"/api/auth/register", map[string]any{
		"email":    email,
		"name":     "Test User",
		"password": "hunter2hunter2",
	}, &user)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: status = %d, want 201", resp.StatusCode)
	}
	return user.ID
}

func createCategory(t *testing.T, baseURL, name string) int64 {
	t.Helper()
	var category struct {
		ID int64 `json:"id"`
	}
	resp := doJSON(t, http.MethodPost, baseURL+"/api/categories/", map[string]any{"name": name}, &category)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create category: status = %d, want 201", resp.StatusCode)
	}
	return category.ID
}
