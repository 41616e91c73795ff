package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/frabiasco/assenze/internal/db"
	"github.com/frabiasco/assenze/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	testAdminEmail    = "admin@test.local"
	testAdminPassword = "admin-pass"
)

func newTestApp(t *testing.T) (*fiber.App, db.DocumentStore) {
	t.Helper()
	app, store, readiness := newTestAppWithReadiness(t)
	readiness.MarkReady()
	return app, store
}

func newTestAppWithReadiness(t *testing.T) (*fiber.App, db.DocumentStore, *services.Readiness) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}
	apiDir := filepath.Dir(testFile)
	rootDir := filepath.Dir(filepath.Dir(apiDir))
	templatesDir := filepath.Join(rootDir, "web", "templates")
	staticDir := filepath.Join(rootDir, "web", "static")

	store, err := db.NewFileStore(filepath.Join(t.TempDir(), "appdata.json"))
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}

	readiness := services.NewReadiness()
	handler, err := NewHandler(store, readiness, templatesDir, staticDir, time.UTC, AdminIdentity{
		Email:    testAdminEmail,
		Password: testAdminPassword,
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, store, readiness
}

func getPage(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return response
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return response
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()

	contents, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	_ = response.Body.Close()
	return string(contents)
}
