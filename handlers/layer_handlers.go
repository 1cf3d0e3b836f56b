package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shotflow/editor-service/internal/timeline"
	"shotflow/editor-service/models"
	"shotflow/editor-service/utils"
)

// AddLayerRequest is the payload for the layer-creation endpoints
// (transition, text, keyframe). Position is the insertion index into the
// shot's layer stack; out-of-range values are clamped by the engine.
//
// Lock state is the caller's concern: the UI checks Shot/Layer.Locked before
// asking for a mutation, so these endpoints do not.
type AddLayerRequest struct {
	Shots    []models.Shot `json:"shots" validate:"required,min=1"`
	ShotID   string        `json:"shot_id" validate:"required"`
	Position int           `json:"position" validate:"gte=0"`
}

// RemoveLayerRequest is the payload for POST /sequence/layers/remove.
type RemoveLayerRequest struct {
	Shots   []models.Shot `json:"shots" validate:"required,min=1"`
	ShotID  string        `json:"shot_id" validate:"required"`
	LayerID string        `json:"layer_id" validate:"required"`
}

// ReorderLayerRequest is the payload for POST /sequence/layers/reorder.
type ReorderLayerRequest struct {
	Shots    []models.Shot `json:"shots" validate:"required,min=1"`
	ShotID   string        `json:"shot_id" validate:"required"`
	LayerID  string        `json:"layer_id" validate:"required"`
	NewIndex int           `json:"new_index" validate:"gte=0"`
}

// SelectToolRequest is the payload for POST /selection/tool.
type SelectToolRequest struct {
	Selection []string `json:"selection"`
	ShotID    string   `json:"shot_id" validate:"required"`
	Multi     bool     `json:"multi"`
}

// AddTransitionLayer inserts a default transition layer into a shot.
func AddTransitionLayer(c *fiber.Ctx) error {
	payload := new(AddLayerRequest)
	if ok, err := parseAndValidate(c, payload); !ok {
		return err
	}
	result := timeline.AddTransition(payload.ShotID, payload.Position, payload.Shots)
	return respondDelta(c, "add_transition", result != nil, result)
}

// AddTextLayer inserts a default text layer into a shot.
func AddTextLayer(c *fiber.Ctx) error {
	payload := new(AddLayerRequest)
	if ok, err := parseAndValidate(c, payload); !ok {
		return err
	}
	result := timeline.AddText(payload.ShotID, payload.Position, payload.Shots)
	return respondDelta(c, "add_text", result != nil, result)
}

// AddKeyframeLayer inserts an empty keyframe-track layer into a shot.
func AddKeyframeLayer(c *fiber.Ctx) error {
	payload := new(AddLayerRequest)
	if ok, err := parseAndValidate(c, payload); !ok {
		return err
	}
	result := timeline.AddKeyframe(payload.ShotID, payload.Position, payload.Shots)
	return respondDelta(c, "add_keyframe", result != nil, result)
}

// RemoveShotLayer drops a layer from a shot by ID.
func RemoveShotLayer(c *fiber.Ctx) error {
	payload := new(RemoveLayerRequest)
	if ok, err := parseAndValidate(c, payload); !ok {
		return err
	}
	result := timeline.RemoveLayer(payload.ShotID, payload.LayerID, payload.Shots)
	return respondDelta(c, "remove_layer", result != nil, result)
}

// ReorderShotLayer moves a layer to a new stack index within its shot.
func ReorderShotLayer(c *fiber.Ctx) error {
	payload := new(ReorderLayerRequest)
	if ok, err := parseAndValidate(c, payload); !ok {
		return err
	}
	result := timeline.ReorderLayer(payload.ShotID, payload.LayerID, payload.NewIndex, payload.Shots)
	return respondDelta(c, "reorder_layer", result != nil, result)
}

// SelectTool computes the next selection set for a click on a shot.
func SelectTool(c *fiber.Ctx) error {
	payload := new(SelectToolRequest)
	if ok, err := parseAndValidate(c, payload); !ok {
		return err
	}
	selection := timeline.SelectTool(payload.Selection, payload.ShotID, payload.Multi)
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"selection": selection})
}
