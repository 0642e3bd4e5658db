package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kanbanhq/kanban-api/internal/config"
	"github.com/kanbanhq/kanban-api/internal/database"
	"github.com/kanbanhq/kanban-api/internal/handlers"
	"github.com/kanbanhq/kanban-api/internal/models"
	"github.com/kanbanhq/kanban-api/internal/routes"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{Port: "8080", MaxPageSize: 500}
	app := fiber.New()
	routes.Setup(app, handlers.New(db, cfg))
	return app
}

// request sends a JSON request through the app and returns status + body.
func request(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, data
}

// requestRaw sends a body without JSON-encoding it first.
func requestRaw(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal %q: %v", data, err)
	}
	return out
}

func createBoard(t *testing.T, app *fiber.App, name string) models.Board {
	t.Helper()
	status, data := request(t, app, http.MethodPost, "/boards", fiber.Map{"name": name})
	if status != http.StatusCreated {
		t.Fatalf("POST /boards status=%d body=%s", status, data)
	}
	return decode[models.Board](t, data)
}

func createUser(t *testing.T, app *fiber.App, name string) models.User {
	t.Helper()
	status, data := request(t, app, http.MethodPost, "/users", fiber.Map{"name": name})
	if status != http.StatusCreated {
		t.Fatalf("POST /users status=%d body=%s", status, data)
	}
	return decode[models.User](t, data)
}

func createTask(t *testing.T, app *fiber.App, payload fiber.Map) models.Task {
	t.Helper()
	status, data := request(t, app, http.MethodPost, "/tasks", payload)
	if status != http.StatusOK {
		t.Fatalf("POST /tasks status=%d body=%s", status, data)
	}
	return decode[models.Task](t, data)
}
