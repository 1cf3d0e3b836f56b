package timeline

import (
	"testing"

	"shotflow/editor-service/models"
)

func layerFixture() []models.Shot {
	shots := testShots()
	shots[0].Layers = []models.Layer{
		{ID: "base", Type: models.LayerTypeMedia, Duration: 100, Opacity: 1,
			Data: &models.MediaData{Src: "clips/base.mp4", TrimOut: 100}},
		{ID: "caption", Type: models.LayerTypeText, Duration: 100, Opacity: 1,
			Data: &models.TextData{Content: "hello"}},
	}
	return shots
}

func TestAddTransition(t *testing.T) {
	shots := layerFixture()

	got := AddTransition("s1", 1, shots)
	if got == nil {
		t.Fatal("AddTransition returned nil")
	}
	if got.Layer.ID == "" {
		t.Error("new layer needs a generated ID")
	}
	if got.Layer.Type != models.LayerTypeTransitions {
		t.Errorf("layer type = %s, want transitions", got.Layer.Type)
	}
	data, ok := got.Layer.Data.(*models.TransitionData)
	if !ok {
		t.Fatalf("payload type = %T, want *TransitionData", got.Layer.Data)
	}
	if data.Kind == "" || data.Duration <= 0 || data.Easing == "" {
		t.Errorf("default payload incomplete: %+v", data)
	}

	if len(got.Layers) != 3 {
		t.Fatalf("new list has %d layers, want 3", len(got.Layers))
	}
	if got.Layers[0].ID != "base" || got.Layers[1].ID != got.Layer.ID || got.Layers[2].ID != "caption" {
		t.Errorf("insertion order wrong: %s, %s, %s", got.Layers[0].ID, got.Layers[1].ID, got.Layers[2].ID)
	}
}

func TestAddTextSpansShot(t *testing.T) {
	shots := layerFixture()

	got := AddText("s1", 0, shots)
	if got == nil {
		t.Fatal("AddText returned nil")
	}
	if got.Layer.StartTime != 0 || got.Layer.Duration != 100 {
		t.Errorf("text layer = (%d, %d), want to span the whole 100-frame shot",
			got.Layer.StartTime, got.Layer.Duration)
	}
	data, ok := got.Layer.Data.(*models.TextData)
	if !ok {
		t.Fatalf("payload type = %T, want *TextData", got.Layer.Data)
	}
	if data.Content == "" || data.FontFamily == "" || data.Color == "" {
		t.Errorf("default payload incomplete: %+v", data)
	}
	if got.Layers[0].ID != got.Layer.ID {
		t.Error("position 0 should insert at the bottom of the stack")
	}
}

func TestAddKeyframe(t *testing.T) {
	shots := layerFixture()

	got := AddKeyframe("s1", 2, shots)
	if got == nil {
		t.Fatal("AddKeyframe returned nil")
	}
	data, ok := got.Layer.Data.(*models.KeyframesData)
	if !ok {
		t.Fatalf("payload type = %T, want *KeyframesData", got.Layer.Data)
	}
	if data.Property == "" {
		t.Error("default payload needs an animated property")
	}
	if data.Keyframes == nil || len(data.Keyframes) != 0 {
		t.Errorf("keyframe list should start empty, got %+v", data.Keyframes)
	}
	if got.Layers[2].ID != got.Layer.ID {
		t.Error("position 2 should append after the existing layers")
	}
}

func TestAddLayerClampsPosition(t *testing.T) {
	shots := layerFixture()

	got := AddTransition("s1", 99, shots)
	if got.Layers[len(got.Layers)-1].ID != got.Layer.ID {
		t.Error("out-of-range position should clamp to the end")
	}
	got = AddTransition("s1", -5, shots)
	if got.Layers[0].ID != got.Layer.ID {
		t.Error("negative position should clamp to the start")
	}
}

func TestAddLayerUnknownShot(t *testing.T) {
	shots := layerFixture()
	if got := AddTransition("missing", 0, shots); got != nil {
		t.Errorf("unknown shot ID should return nil, got %+v", got)
	}
	if got := AddText("missing", 0, shots); got != nil {
		t.Errorf("unknown shot ID should return nil, got %+v", got)
	}
	if got := AddKeyframe("missing", 0, shots); got != nil {
		t.Errorf("unknown shot ID should return nil, got %+v", got)
	}
}

func TestAddLayerDoesNotMutateInput(t *testing.T) {
	shots := layerFixture()
	AddTransition("s1", 1, shots)
	if len(shots[0].Layers) != 2 {
		t.Errorf("input layer list mutated: %d layers", len(shots[0].Layers))
	}
}

func TestRemoveLayer(t *testing.T) {
	shots := layerFixture()

	got := RemoveLayer("s1", "caption", shots)
	if got == nil {
		t.Fatal("RemoveLayer returned nil")
	}
	if len(got.Layers) != 1 || got.Layers[0].ID != "base" {
		t.Errorf("new list = %+v, want only base", got.Layers)
	}

	if got := RemoveLayer("s1", "missing", shots); got != nil {
		t.Errorf("unknown layer ID should return nil, got %+v", got)
	}
	if got := RemoveLayer("missing", "caption", shots); got != nil {
		t.Errorf("unknown shot ID should return nil, got %+v", got)
	}
	if len(shots[0].Layers) != 2 {
		t.Error("input layer list mutated")
	}
}

func TestReorderLayer(t *testing.T) {
	shots := layerFixture()

	got := ReorderLayer("s1", "caption", 0, shots)
	if got == nil {
		t.Fatal("ReorderLayer returned nil")
	}
	if got.Layers[0].ID != "caption" || got.Layers[1].ID != "base" {
		t.Errorf("order = %s, %s, want caption, base", got.Layers[0].ID, got.Layers[1].ID)
	}

	// Out-of-range index clamps to the end.
	got = ReorderLayer("s1", "base", 10, shots)
	if got.Layers[1].ID != "base" {
		t.Errorf("order = %s, %s, want caption, base", got.Layers[0].ID, got.Layers[1].ID)
	}

	if got := ReorderLayer("s1", "missing", 0, shots); got != nil {
		t.Errorf("unknown layer ID should return nil, got %+v", got)
	}
	if got := ReorderLayer("missing", "caption", 0, shots); got != nil {
		t.Errorf("unknown shot ID should return nil, got %+v", got)
	}
}
