package timeline

import (
	"github.com/google/uuid"

	"shotflow/editor-service/models"
)

// Default payloads for the layer-creation helpers. Callers are expected to
// check Shot/Layer lock state before asking for a mutation; the engine only
// computes the new layer list.
const (
	defaultTransitionFrames = 12
	defaultTransitionKind   = "cross_dissolve"
	defaultEasing           = "ease_in_out"
	defaultTextContent      = "Text"
	defaultFontFamily       = "Inter"
	defaultFontSize         = 48
	defaultTextColor        = "#ffffff"
)

// AddLayerResult is the delta produced by the layer-creation helpers: the
// newly constructed layer plus the shot's full new ordered layer list.
type AddLayerResult struct {
	Layer  models.Layer   `json:"layer"`
	Layers []models.Layer `json:"layers"`
}

// LayersResult is the delta produced by layer removal and reorder: the
// shot's full new ordered layer list.
type LayersResult struct {
	Layers []models.Layer `json:"layers"`
}

// AddTransition builds a transition layer with default payload and inserts
// it into the shot's layer list at position (clamped to the list bounds).
// Returns nil when shotID is not in the list.
func AddTransition(shotID string, position int, shots []models.Shot) *AddLayerResult {
	layer := models.Layer{
		ID:       uuid.NewString(),
		Type:     models.LayerTypeTransitions,
		Duration: defaultTransitionFrames,
		Opacity:  1,
		Data: &models.TransitionData{
			Kind:     defaultTransitionKind,
			Duration: defaultTransitionFrames,
			Easing:   defaultEasing,
		},
	}
	return addLayer(shotID, position, layer, shots)
}

// AddText builds a text layer with default payload spanning the whole shot
// and inserts it at position. Returns nil when shotID is not in the list.
func AddText(shotID string, position int, shots []models.Shot) *AddLayerResult {
	idx := shotIndex(shotID, shots)
	if idx < 0 {
		return nil
	}
	layer := models.Layer{
		ID:       uuid.NewString(),
		Type:     models.LayerTypeText,
		Duration: shots[idx].Duration,
		Opacity:  1,
		Data: &models.TextData{
			Content:    defaultTextContent,
			FontFamily: defaultFontFamily,
			FontSize:   defaultFontSize,
			Color:      defaultTextColor,
			Position:   models.TextPosition{X: 0.5, Y: 0.5},
		},
	}
	return addLayer(shotID, position, layer, shots)
}

// AddKeyframe builds an empty keyframe-track layer spanning the whole shot
// and inserts it at position. Returns nil when shotID is not in the list.
func AddKeyframe(shotID string, position int, shots []models.Shot) *AddLayerResult {
	idx := shotIndex(shotID, shots)
	if idx < 0 {
		return nil
	}
	layer := models.Layer{
		ID:       uuid.NewString(),
		Type:     models.LayerTypeKeyframes,
		Duration: shots[idx].Duration,
		Opacity:  1,
		Data: &models.KeyframesData{
			Property:  "opacity",
			Keyframes: []models.Keyframe{},
		},
	}
	return addLayer(shotID, position, layer, shots)
}

func addLayer(shotID string, position int, layer models.Layer, shots []models.Shot) *AddLayerResult {
	idx := shotIndex(shotID, shots)
	if idx < 0 {
		return nil
	}
	existing := shots[idx].Layers
	position = clamp(position, 0, len(existing))

	layers := make([]models.Layer, 0, len(existing)+1)
	layers = append(layers, models.CloneLayers(existing[:position])...)
	layers = append(layers, layer)
	layers = append(layers, models.CloneLayers(existing[position:])...)
	return &AddLayerResult{Layer: layer, Layers: layers}
}

// RemoveLayer drops the layer with layerID from the shot's list. Returns nil
// when the shot or the layer is not found.
func RemoveLayer(shotID, layerID string, shots []models.Shot) *LayersResult {
	idx := shotIndex(shotID, shots)
	if idx < 0 {
		return nil
	}
	existing := shots[idx].Layers
	layers := make([]models.Layer, 0, len(existing))
	found := false
	for _, l := range existing {
		if l.ID == layerID {
			found = true
			continue
		}
		layers = append(layers, l.Clone())
	}
	if !found {
		return nil
	}
	return &LayersResult{Layers: layers}
}

// ReorderLayer moves the layer with layerID to newIndex in the shot's list
// (clamped to the list bounds), preserving the relative order of the others.
// Returns nil when the shot or the layer is not found.
func ReorderLayer(shotID, layerID string, newIndex int, shots []models.Shot) *LayersResult {
	idx := shotIndex(shotID, shots)
	if idx < 0 {
		return nil
	}
	existing := shots[idx].Layers

	from := -1
	for i := range existing {
		if existing[i].ID == layerID {
			from = i
			break
		}
	}
	if from < 0 {
		return nil
	}

	layers := models.CloneLayers(existing)
	moved := layers[from]
	layers = append(layers[:from], layers[from+1:]...)
	newIndex = clamp(newIndex, 0, len(layers))
	layers = append(layers[:newIndex], append([]models.Layer{moved}, layers[newIndex:]...)...)
	return &LayersResult{Layers: layers}
}
