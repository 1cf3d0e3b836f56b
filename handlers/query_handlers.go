package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shotflow/editor-service/internal/timeline"
	"shotflow/editor-service/models"
	"shotflow/editor-service/utils"
)

// ShotAtFrameRequest is the payload for POST /sequence/shot-at-frame.
type ShotAtFrameRequest struct {
	Shots []models.Shot `json:"shots" validate:"required,min=1"`
	Frame int           `json:"frame" validate:"gte=0"`
}

// ShotEdgeRequest is the payload for POST /sequence/edge. The UI uses the
// answer to decide whether a drag near a shot should trim an edge or move
// the whole shot.
type ShotEdgeRequest struct {
	Frame        int `json:"frame" validate:"gte=0"`
	ShotStart    int `json:"shot_start" validate:"gte=0"`
	ShotDuration int `json:"shot_duration" validate:"required,gte=1"`
	Threshold    int `json:"threshold" validate:"gte=0"`
}

// ShotAtFrame returns the shot whose interval contains the frame, or a null
// payload when the frame falls in a gap.
func ShotAtFrame(c *fiber.Ctx) error {
	payload := new(ShotAtFrameRequest)
	if ok, err := parseAndValidate(c, payload); !ok {
		return err
	}
	shot := timeline.FindShotAtFrame(payload.Frame, payload.Shots)
	if shot == nil {
		return utils.RespondWithJSON(c, fiber.StatusOK, nil)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, shot)
}

// DetectShotEdge classifies a frame against a shot's edges.
func DetectShotEdge(c *fiber.Ctx) error {
	payload := new(ShotEdgeRequest)
	if ok, err := parseAndValidate(c, payload); !ok {
		return err
	}
	edge := timeline.ShotEdge(payload.Frame, payload.ShotStart, payload.ShotDuration, payload.Threshold)
	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"edge": edge})
}
