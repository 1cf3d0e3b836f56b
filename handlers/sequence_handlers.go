package handlers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shotflow/editor-service/config"
	"shotflow/editor-service/internal/timeline"
	"shotflow/editor-service/models"
	"shotflow/editor-service/utils"
)

var validate = validator.New()

// Every sequence endpoint is a stateless preview: the caller posts the
// current ordered shot list plus operation parameters and gets back the
// delta the engine computed. Applying the delta, history capture and
// persistence stay on the caller's side. A nil engine result maps to 422.

// MoveRequest is the payload for POST /sequence/move.
type MoveRequest struct {
	Shots       []models.Shot `json:"shots" validate:"required,min=1"`
	ShotID      string        `json:"shot_id" validate:"required"`
	DeltaFrames int           `json:"delta_frames"`
}

// TrimRequest is the payload for POST /sequence/trim.
type TrimRequest struct {
	Shots       []models.Shot `json:"shots" validate:"required,min=1"`
	ShotID      string        `json:"shot_id" validate:"required"`
	Edge        string        `json:"edge" validate:"required,oneof=start end"`
	DeltaFrames int           `json:"delta_frames"`
	MinDuration int           `json:"min_duration" validate:"omitempty,gte=1"`
}

// SplitRequest is the payload for POST /sequence/split.
type SplitRequest struct {
	Shots      []models.Shot `json:"shots" validate:"required,min=1"`
	ShotID     string        `json:"shot_id" validate:"required"`
	SplitFrame int           `json:"split_frame" validate:"gte=0"`
}

// RippleRequest is the payload for POST /sequence/ripple.
type RippleRequest struct {
	Shots       []models.Shot `json:"shots" validate:"required,min=1"`
	ShotID      string        `json:"shot_id" validate:"required"`
	Edge        string        `json:"edge" validate:"required,oneof=start end"`
	DeltaFrames int           `json:"delta_frames"`
}

// RollRequest is the payload for POST /sequence/roll.
type RollRequest struct {
	Shots       []models.Shot `json:"shots" validate:"required,min=2"`
	LeftShotID  string        `json:"left_shot_id" validate:"required"`
	RightShotID string        `json:"right_shot_id" validate:"required"`
	DeltaFrames int           `json:"delta_frames"`
	MinDuration int           `json:"min_duration" validate:"omitempty,gte=1"`
}

// SlipRequest is the payload for POST /sequence/slip.
type SlipRequest struct {
	Shots       []models.Shot `json:"shots" validate:"required,min=1"`
	ShotID      string        `json:"shot_id" validate:"required"`
	DeltaFrames int           `json:"delta_frames"`
}

// SlideRequest is the payload for POST /sequence/slide.
type SlideRequest struct {
	Shots       []models.Shot `json:"shots" validate:"required,min=1"`
	ShotID      string        `json:"shot_id" validate:"required"`
	DeltaFrames int           `json:"delta_frames"`
}

// parseAndValidate decodes the request body into payload and runs struct
// validation. ok is false when the request was already answered with a 400;
// the returned error is then the response writer's.
func parseAndValidate(c *fiber.Ctx, payload interface{}) (ok bool, err error) {
	if err := c.BodyParser(payload); err != nil {
		return false, utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse JSON: %v", err))
	}
	if err := validate.Struct(payload); err != nil {
		errors := utils.FormatValidationErrors(err)
		return false, utils.RespondWithError(c, fiber.StatusBadRequest, strings.Join(errors, ", "))
	}
	return true, nil
}

// respondDelta writes the engine result, mapping the nil sentinel ("operation
// not applicable") to 422 so callers can treat it as a no-op.
func respondDelta(c *fiber.Ctx, operation string, applicable bool, delta interface{}) error {
	if !applicable {
		config.Log.WithField("operation", operation).Warn("Edit operation not applicable")
		return utils.RespondWithError(c, fiber.StatusUnprocessableEntity, "operation not applicable")
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, delta)
}

// MoveShot computes a clamped translation for one shot.
func MoveShot(c *fiber.Ctx) error {
	payload := new(MoveRequest)
	if ok, err := parseAndValidate(c, payload); !ok {
		return err
	}
	result := timeline.Move(payload.ShotID, payload.DeltaFrames, payload.Shots)
	return respondDelta(c, "move", result != nil, result)
}

// TrimShot computes a single-edge trim for one shot.
func TrimShot(c *fiber.Ctx) error {
	payload := new(TrimRequest)
	if ok, err := parseAndValidate(c, payload); !ok {
		return err
	}
	result := timeline.Trim(payload.ShotID, timeline.Edge(payload.Edge), payload.DeltaFrames, payload.Shots, payload.MinDuration)
	return respondDelta(c, "trim", result != nil, result)
}

// SplitShot computes the two shots produced by cutting one shot at an
// absolute frame.
func SplitShot(c *fiber.Ctx) error {
	payload := new(SplitRequest)
	if ok, err := parseAndValidate(c, payload); !ok {
		return err
	}
	result := timeline.Split(payload.ShotID, payload.SplitFrame, payload.Shots)
	return respondDelta(c, "split", result != nil, result)
}

// RippleEditShot computes an end-edge trim plus the uniform shift of every
// later shot.
func RippleEditShot(c *fiber.Ctx) error {
	payload := new(RippleRequest)
	if ok, err := parseAndValidate(c, payload); !ok {
		return err
	}
	result := timeline.RippleEdit(payload.ShotID, timeline.Edge(payload.Edge), payload.DeltaFrames, payload.Shots)
	return respondDelta(c, "ripple", result != nil, result)
}

// RollEditShots computes a boundary roll between two adjacent shots.
func RollEditShots(c *fiber.Ctx) error {
	payload := new(RollRequest)
	if ok, err := parseAndValidate(c, payload); !ok {
		return err
	}
	result := timeline.RollEdit(payload.LeftShotID, payload.RightShotID, payload.DeltaFrames, payload.Shots, payload.MinDuration)
	return respondDelta(c, "roll", result != nil, result)
}

// SlipEditShot computes new source trim windows for a shot's media layers.
func SlipEditShot(c *fiber.Ctx) error {
	payload := new(SlipRequest)
	if ok, err := parseAndValidate(c, payload); !ok {
		return err
	}
	result := timeline.SlipEdit(payload.ShotID, payload.DeltaFrames, payload.Shots)
	return respondDelta(c, "slip", result != nil, result)
}

// SlideEditShot computes a neighbor-absorbing move for one shot.
func SlideEditShot(c *fiber.Ctx) error {
	payload := new(SlideRequest)
	if ok, err := parseAndValidate(c, payload); !ok {
		return err
	}
	result := timeline.SlideEdit(payload.ShotID, payload.DeltaFrames, payload.Shots)
	return respondDelta(c, "slide", result != nil, result)
}
