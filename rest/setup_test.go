package rest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"netinv-api/db"
	"netinv-api/sms"

	"github.com/gofiber/fiber/v2"
)

func setupTestDB(t *testing.T) {
	config := db.Config{
		Driver:   "sqlite",
		Database: ":memory:",
	}

	if err := db.ConnectWithConfig(config); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// A pooled :memory: database is one database per connection; pin the
	// pool to a single connection so every query sees the same schema.
	db.GetDB().SetMaxOpenConns(1)

	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
}

func teardownTestDB() {
	db.Close()
}

func setupTestApp(dispatcher *sms.Dispatcher) *fiber.App {
	app := fiber.New()
	Init(app, dispatcher)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload interface{}) (int, []byte) {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to perform request: %v", err)
	}
	defer resp.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return resp.StatusCode, buf.Bytes()
}
