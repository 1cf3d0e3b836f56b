package timeline

import (
	"github.com/google/uuid"

	"shotflow/editor-service/models"
)

// DefaultMinDuration is the floor, in frames, below which no edit operation
// will shrink a shot. Operations that accept a minDuration treat values <= 0
// as this default.
const DefaultMinDuration = 1

// MoveResult is the delta produced by Move.
type MoveResult struct {
	NewStartTime int `json:"new_start_time"`
}

// Move translates a shot by deltaFrames, clamping at frame 0. It performs no
// collision checking against neighboring shots; that policy is the caller's.
// Returns nil when shotID is not in the list.
func Move(shotID string, deltaFrames int, shots []models.Shot) *MoveResult {
	idx := shotIndex(shotID, shots)
	if idx < 0 {
		return nil
	}
	newStart := shots[idx].StartTime + deltaFrames
	if newStart < 0 {
		newStart = 0
	}
	return &MoveResult{NewStartTime: newStart}
}

// TrimResult is the delta produced by Trim. NewStartTime is nil for an
// end-edge trim, where the start frame is unchanged.
type TrimResult struct {
	NewStartTime *int `json:"new_start_time,omitempty"`
	NewDuration  int  `json:"new_duration"`
}

// Trim adjusts one edge of a shot by deltaFrames.
//
// A start-edge trim holds the shot's end frame fixed: the new start is
// clamped to [0, end-minDuration] and the duration recomputed from it. An
// end-edge trim holds the start fixed and floors the new duration at
// minDuration. Out-of-range deltas are clamped, never rejected; nil is
// returned only for an unknown shotID or an edge that is not start or end.
func Trim(shotID string, edge Edge, deltaFrames int, shots []models.Shot, minDuration int) *TrimResult {
	idx := shotIndex(shotID, shots)
	if idx < 0 {
		return nil
	}
	if minDuration <= 0 {
		minDuration = DefaultMinDuration
	}
	shot := shots[idx]

	switch edge {
	case EdgeStart:
		end := shot.EndTime()
		newStart := clamp(shot.StartTime+deltaFrames, 0, end-minDuration)
		return &TrimResult{
			NewStartTime: &newStart,
			NewDuration:  end - newStart,
		}
	case EdgeEnd:
		newDuration := shot.Duration + deltaFrames
		if newDuration < minDuration {
			newDuration = minDuration
		}
		return &TrimResult{NewDuration: newDuration}
	default:
		return nil
	}
}

// SplitResult is the delta produced by Split: two shots that replace the
// original in place.
type SplitResult struct {
	NewShots [2]models.Shot `json:"new_shots"`
}

// Split cuts a shot at an absolute timeline frame, producing two shots that
// together cover the original interval. The split point must be strictly
// inside the shot; a cut at or outside either boundary returns nil, as does
// an unknown shotID.
//
// The first half keeps the original ID; the second half gets a fresh one.
// Both inherit every non-timing field and a full copy of the layer list —
// layers are never dropped, but a layer overrunning its half's new duration
// is clipped to fit.
func Split(shotID string, splitFrame int, shots []models.Shot) *SplitResult {
	idx := shotIndex(shotID, shots)
	if idx < 0 {
		return nil
	}
	shot := shots[idx]
	offset := splitFrame - shot.StartTime
	if offset <= 0 || offset >= shot.Duration {
		return nil
	}

	first := shot.Clone()
	first.Duration = offset

	second := shot.Clone()
	second.ID = uuid.NewString()
	second.StartTime = splitFrame
	second.Duration = shot.Duration - offset

	clipLayers(first.Layers, first.Duration)
	clipLayers(second.Layers, second.Duration)

	return &SplitResult{NewShots: [2]models.Shot{first, second}}
}

// clipLayers shortens any layer that extends past the shot's new duration.
// Layer count is preserved.
func clipLayers(layers []models.Layer, duration int) {
	for i := range layers {
		if layers[i].StartTime+layers[i].Duration > duration {
			remaining := duration - layers[i].StartTime
			if remaining < 0 {
				remaining = 0
			}
			layers[i].Duration = remaining
		}
	}
}
