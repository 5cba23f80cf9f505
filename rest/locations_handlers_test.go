package rest

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestLocationCRUD(t *testing.T) {
	setupTestDB(t)
	defer teardownTestDB()

	app := setupTestApp(nil)

	var locationID int64

	t.Run("Create location", func(t *testing.T) {
		status, body := doJSON(t, app, "POST", "/api/locations", LocationRequest{Name: "Westlands"})
		if status != fiber.StatusCreated {
			t.Fatalf("Expected status %d, got %d. Response: %s", fiber.StatusCreated, status, string(body))
		}

		var response CreatedResponse
		if err := json.Unmarshal(body, &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.ID == 0 {
			t.Error("Expected non-zero location id")
		}
		locationID = response.ID
	})

	t.Run("Create without name fails", func(t *testing.T) {
		status, _ := doJSON(t, app, "POST", "/api/locations", map[string]string{"description": "no name"})
		if status != fiber.StatusBadRequest {
			t.Errorf("Expected status %d, got %d", fiber.StatusBadRequest, status)
		}
	})

	t.Run("Get location", func(t *testing.T) {
		status, body := doJSON(t, app, "GET", "/api/locations/1", nil)
		if status != fiber.StatusOK {
			t.Fatalf("Expected status %d, got %d. Response: %s", fiber.StatusOK, status, string(body))
		}

		var detail LocationDetail
		if err := json.Unmarshal(body, &detail); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if detail.Name != "Westlands" {
			t.Errorf("Expected name 'Westlands', got %q", detail.Name)
		}
	})

	t.Run("Get missing location", func(t *testing.T) {
		status, _ := doJSON(t, app, "GET", "/api/locations/999", nil)
		if status != fiber.StatusNotFound {
			t.Errorf("Expected status %d, got %d", fiber.StatusNotFound, status)
		}
	})

	t.Run("Update location", func(t *testing.T) {
		status, _ := doJSON(t, app, "PUT", "/api/locations/1", LocationRequest{Name: "Westlands North"})
		if status != fiber.StatusOK {
			t.Errorf("Expected status %d, got %d", fiber.StatusOK, status)
		}
	})

	t.Run("Update missing location", func(t *testing.T) {
		status, _ := doJSON(t, app, "PUT", "/api/locations/999", LocationRequest{Name: "Nowhere"})
		if status != fiber.StatusNotFound {
			t.Errorf("Expected status %d, got %d", fiber.StatusNotFound, status)
		}
	})

	t.Run("Delete refused while devices reference it", func(t *testing.T) {
		status, _ := doJSON(t, app, "POST", "/api/devices", DeviceRequest{
			DeviceName: "sw-01",
			DeviceType: "switch",
			LocationID: &locationID,
		})
		if status != fiber.StatusCreated {
			t.Fatalf("Failed to create device, status %d", status)
		}

		status, _ = doJSON(t, app, "DELETE", "/api/locations/1", nil)
		if status != fiber.StatusConflict {
			t.Errorf("Expected status %d, got %d", fiber.StatusConflict, status)
		}
	})

	t.Run("Delete after device removed", func(t *testing.T) {
		status, _ := doJSON(t, app, "DELETE", "/api/devices/1", nil)
		if status != fiber.StatusOK {
			t.Fatalf("Failed to delete device, status %d", status)
		}

		status, _ = doJSON(t, app, "DELETE", "/api/locations/1", nil)
		if status != fiber.StatusOK {
			t.Errorf("Expected status %d, got %d", fiber.StatusOK, status)
		}

		status, body := doJSON(t, app, "GET", "/api/locations", nil)
		if status != fiber.StatusOK {
			t.Fatalf("Expected status %d, got %d", fiber.StatusOK, status)
		}
		var locations []LocationDetail
		if err := json.Unmarshal(body, &locations); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if len(locations) != 0 {
			t.Errorf("Expected no locations left, got %d", len(locations))
		}
	})
}
