package rest

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"netinv-api/db"
	"netinv-api/sms"

	"github.com/gofiber/fiber/v2"
)

type stubGateway struct {
	calls       int
	lastNumbers []string
	err         error
}

func (g *stubGateway) Send(_ context.Context, phoneNumbers []string, _ string) (json.RawMessage, error) {
	g.calls++
	g.lastNumbers = phoneNumbers
	if g.err != nil {
		return nil, g.err
	}
	return json.RawMessage(`{"status":"ok"}`), nil
}

func newSMSTestApp(gw sms.Gateway) *fiber.App {
	dispatcher := &sms.Dispatcher{
		Gateway:     gw,
		Store:       db.SMSStore{},
		Logs:        db.SMSStore{},
		CountryCode: "254",
	}
	return setupTestApp(dispatcher)
}

func seedClient(t *testing.T, app *fiber.App, name string, contact *string) {
	t.Helper()

	status, body := doJSON(t, app, "POST", "/api/clients", ClientRequest{
		Name:        name,
		ContactInfo: contact,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("Failed to create client %s: %s", name, string(body))
	}
}

func TestSendSMSHandler(t *testing.T) {
	setupTestDB(t)
	defer teardownTestDB()

	gw := &stubGateway{}
	app := newSMSTestApp(gw)

	contact := "0712345678"
	seedClient(t, app, "Alice", &contact)
	seedClient(t, app, "Bob", nil)

	status, body := doJSON(t, app, "POST", "/api/sms/send", SendSMSRequest{
		Message:    "maintenance tonight",
		Recipients: []int64{1, 2},
	})
	if status != fiber.StatusOK {
		t.Fatalf("Expected status %d, got %d. Response: %s", fiber.StatusOK, status, string(body))
	}

	var response SendSMSResponse
	if err := json.Unmarshal(body, &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Sent != 1 {
		t.Errorf("Expected 1 sent, got %d", response.Sent)
	}
	if response.Skipped != 1 {
		t.Errorf("Expected 1 skipped, got %d", response.Skipped)
	}
	if response.BatchID == "" {
		t.Error("Expected a batch id")
	}

	if gw.calls != 1 {
		t.Fatalf("Expected exactly one gateway call, got %d", gw.calls)
	}
	if len(gw.lastNumbers) != 1 || gw.lastNumbers[0] != "254712345678" {
		t.Errorf("Expected gateway called with one normalized number, got %v", gw.lastNumbers)
	}

	t.Run("Log rows written for sent recipients", func(t *testing.T) {
		status, body := doJSON(t, app, "GET", "/api/sms/history/1", nil)
		if status != fiber.StatusOK {
			t.Fatalf("Expected status %d, got %d", fiber.StatusOK, status)
		}

		var logs []SMSLogDetail
		if err := json.Unmarshal(body, &logs); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if len(logs) != 1 {
			t.Fatalf("Expected 1 log entry, got %d", len(logs))
		}
		if logs[0].BatchID != response.BatchID {
			t.Errorf("Expected batch id %q, got %q", response.BatchID, logs[0].BatchID)
		}
	})

	t.Run("Skipped recipient has no log rows", func(t *testing.T) {
		status, body := doJSON(t, app, "GET", "/api/sms/history/2", nil)
		if status != fiber.StatusOK {
			t.Fatalf("Expected status %d, got %d", fiber.StatusOK, status)
		}

		var logs []SMSLogDetail
		if err := json.Unmarshal(body, &logs); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if len(logs) != 0 {
			t.Errorf("Expected no log entries, got %d", len(logs))
		}
	})
}

func TestSendSMSHandlerNoValidRecipients(t *testing.T) {
	setupTestDB(t)
	defer teardownTestDB()

	gw := &stubGateway{}
	app := newSMSTestApp(gw)

	badContact := "garbage"
	seedClient(t, app, "Alice", nil)
	seedClient(t, app, "Bob", &badContact)

	status, body := doJSON(t, app, "POST", "/api/sms/send", SendSMSRequest{
		Message:    "hello",
		Recipients: []int64{1, 2},
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("Expected status %d, got %d. Response: %s", fiber.StatusBadRequest, status, string(body))
	}

	if gw.calls != 0 {
		t.Errorf("Gateway must not be called with no valid recipients, got %d calls", gw.calls)
	}

	var response map[string]json.RawMessage
	if err := json.Unmarshal(body, &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if _, ok := response["skipped_details"]; !ok {
		t.Error("Expected skipped_details in the error response")
	}
}

func TestSendSMSHandlerGatewayFailure(t *testing.T) {
	setupTestDB(t)
	defer teardownTestDB()

	gw := &stubGateway{err: errors.New("upstream down")}
	app := newSMSTestApp(gw)

	contact := "0712345678"
	seedClient(t, app, "Alice", &contact)

	status, _ := doJSON(t, app, "POST", "/api/sms/send", SendSMSRequest{
		Message:    "hello",
		Recipients: []int64{1},
	})
	if status != fiber.StatusBadGateway {
		t.Fatalf("Expected status %d, got %d", fiber.StatusBadGateway, status)
	}

	status, body := doJSON(t, app, "GET", "/api/sms/history/1", nil)
	if status != fiber.StatusOK {
		t.Fatalf("Expected status %d, got %d", fiber.StatusOK, status)
	}

	var logs []SMSLogDetail
	if err := json.Unmarshal(body, &logs); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("No log entries may exist after a gateway failure, got %d", len(logs))
	}
}

func TestSendSMSByLocationHandler(t *testing.T) {
	setupTestDB(t)
	defer teardownTestDB()

	gw := &stubGateway{}
	app := newSMSTestApp(gw)

	status, _ := doJSON(t, app, "POST", "/api/locations", LocationRequest{Name: "Westlands"})
	if status != fiber.StatusCreated {
		t.Fatalf("Failed to create location, status %d", status)
	}

	locationID := int64(1)
	status, _ = doJSON(t, app, "POST", "/api/devices", DeviceRequest{
		DeviceName: "sw-01",
		DeviceType: "switch",
		LocationID: &locationID,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("Failed to create device, status %d", status)
	}

	deviceID := int64(1)
	contact := "0712345678"
	status, _ = doJSON(t, app, "POST", "/api/clients", ClientRequest{
		Name:        "Alice",
		ContactInfo: &contact,
		DeviceID:    &deviceID,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("Failed to create client, status %d", status)
	}

	// Bob has no device, so he is outside the location's audience.
	otherContact := "0798765432"
	status, _ = doJSON(t, app, "POST", "/api/clients", ClientRequest{
		Name:        "Bob",
		ContactInfo: &otherContact,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("Failed to create client, status %d", status)
	}

	status, body := doJSON(t, app, "POST", "/api/sms/send-by-location", SendSMSByLocationRequest{
		LocationID: locationID,
		Message:    "outage in your area",
	})
	if status != fiber.StatusOK {
		t.Fatalf("Expected status %d, got %d. Response: %s", fiber.StatusOK, status, string(body))
	}

	var response SendSMSResponse
	if err := json.Unmarshal(body, &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Sent != 1 {
		t.Errorf("Expected 1 sent, got %d", response.Sent)
	}
	if len(gw.lastNumbers) != 1 || gw.lastNumbers[0] != "254712345678" {
		t.Errorf("Expected only the located client's number, got %v", gw.lastNumbers)
	}
}

func TestSMSCampaignHistory(t *testing.T) {
	setupTestDB(t)
	defer teardownTestDB()

	gw := &stubGateway{}
	app := newSMSTestApp(gw)

	contactA := "0712345678"
	contactB := "0798765432"
	seedClient(t, app, "Alice", &contactA)
	seedClient(t, app, "Bob", &contactB)

	for _, msg := range []string{"first campaign", "second campaign"} {
		status, body := doJSON(t, app, "POST", "/api/sms/send-all", SendSMSAllRequest{Message: msg})
		if status != fiber.StatusOK {
			t.Fatalf("Failed to send %q: %s", msg, string(body))
		}
	}

	status, body := doJSON(t, app, "GET", "/api/sms/history", nil)
	if status != fiber.StatusOK {
		t.Fatalf("Expected status %d, got %d", fiber.StatusOK, status)
	}

	var campaigns []sms.Campaign
	if err := json.Unmarshal(body, &campaigns); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(campaigns) != 2 {
		t.Fatalf("Expected 2 campaigns, got %d", len(campaigns))
	}
	for _, campaign := range campaigns {
		if campaign.BatchID == "" {
			t.Error("Expected every campaign to carry a batch id")
		}
		if len(campaign.Recipients) != 2 {
			t.Errorf("Expected 2 recipients in campaign %q, got %d", campaign.Message, len(campaign.Recipients))
		}
	}
}
