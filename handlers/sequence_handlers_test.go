package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"shotflow/editor-service/config"
	"shotflow/editor-service/models"
)

func newTestApp() *fiber.App {
	config.InitLogger()
	app := fiber.New()
	app.Post("/sequence/move", MoveShot)
	app.Post("/sequence/trim", TrimShot)
	app.Post("/sequence/ripple", RippleEditShot)
	app.Post("/sequence/roll", RollEditShots)
	app.Post("/sequence/layers/text", AddTextLayer)
	app.Post("/selection/tool", SelectTool)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, decoded
}

func handlerShots() []models.Shot {
	return []models.Shot{
		{ID: "s1", StartTime: 0, Duration: 100},
		{ID: "s2", StartTime: 100, Duration: 100},
		{ID: "s3", StartTime: 200, Duration: 100},
	}
}

func TestMoveShotEndpoint(t *testing.T) {
	app := newTestApp()

	resp, body := postJSON(t, app, "/sequence/move", MoveRequest{
		Shots: handlerShots(), ShotID: "s2", DeltaFrames: 30,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body["status"] != "success" {
		t.Errorf("envelope status = %v, want success", body["status"])
	}
	data := body["data"].(map[string]interface{})
	if data["new_start_time"] != float64(130) {
		t.Errorf("new_start_time = %v, want 130", data["new_start_time"])
	}
}

func TestMoveShotNotApplicable(t *testing.T) {
	app := newTestApp()

	resp, body := postJSON(t, app, "/sequence/move", MoveRequest{
		Shots: handlerShots(), ShotID: "missing", DeltaFrames: 30,
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	if body["status"] != "error" {
		t.Errorf("envelope status = %v, want error", body["status"])
	}
}

func TestTrimShotRejectsBadEdge(t *testing.T) {
	app := newTestApp()

	resp, _ := postJSON(t, app, "/sequence/trim", map[string]interface{}{
		"shots": handlerShots(), "shot_id": "s1", "edge": "sideways", "delta_frames": 5,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for an invalid edge", resp.StatusCode)
	}
}

func TestMoveShotRejectsMalformedBody(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/sequence/move", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRippleEndpoint(t *testing.T) {
	app := newTestApp()

	resp, body := postJSON(t, app, "/sequence/ripple", RippleRequest{
		Shots: handlerShots(), ShotID: "s1", Edge: "end", DeltaFrames: 20,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	data := body["data"].(map[string]interface{})
	if data["new_duration"] != float64(120) {
		t.Errorf("new_duration = %v, want 120", data["new_duration"])
	}
	affected := data["affected_shots"].([]interface{})
	if len(affected) != 2 {
		t.Fatalf("affected %d shots, want 2", len(affected))
	}
	first := affected[0].(map[string]interface{})
	if first["shot_id"] != "s2" || first["new_start_time"] != float64(120) {
		t.Errorf("affected[0] = %v, want s2 at 120", first)
	}
}

func TestRollEndpointNonAdjacent(t *testing.T) {
	app := newTestApp()

	resp, _ := postJSON(t, app, "/sequence/roll", RollRequest{
		Shots: handlerShots(), LeftShotID: "s1", RightShotID: "s3", DeltaFrames: 20,
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 for non-adjacent shots", resp.StatusCode)
	}
}

func TestAddTextLayerEndpoint(t *testing.T) {
	app := newTestApp()

	resp, body := postJSON(t, app, "/sequence/layers/text", AddLayerRequest{
		Shots: handlerShots(), ShotID: "s1", Position: 0,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	data := body["data"].(map[string]interface{})
	layer := data["layer"].(map[string]interface{})
	if layer["type"] != "text" {
		t.Errorf("layer type = %v, want text", layer["type"])
	}
	if layer["id"] == "" {
		t.Error("layer needs a generated ID")
	}
	layers := data["layers"].([]interface{})
	if len(layers) != 1 {
		t.Errorf("new layer list has %d entries, want 1", len(layers))
	}
}

func TestSelectToolEndpoint(t *testing.T) {
	app := newTestApp()

	resp, body := postJSON(t, app, "/selection/tool", SelectToolRequest{
		Selection: []string{"s1"}, ShotID: "s2", Multi: true,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	data := body["data"].(map[string]interface{})
	selection := data["selection"].([]interface{})
	if len(selection) != 2 || selection[0] != "s1" || selection[1] != "s2" {
		t.Errorf("selection = %v, want [s1 s2]", selection)
	}
}
