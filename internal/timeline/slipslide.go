package timeline

import "shotflow/editor-service/models"

// LayerTrim records the new source trim window computed for one media layer.
type LayerTrim struct {
	LayerID    string `json:"layer_id"`
	NewTrimIn  int    `json:"new_trim_in"`
	NewTrimOut int    `json:"new_trim_out"`
}

// SlipResult is the delta produced by SlipEdit.
type SlipResult struct {
	Layers []LayerTrim `json:"layers"`
}

// SlipEdit shifts the source trim window of a shot's media layers by
// deltaFrames without moving the shot on the timeline: StartTime, Duration
// and all neighbors are unaffected, only which part of the source plays
// changes. Each layer's window keeps its length and is clamped independently
// to the source's available range (a SourceDuration of 0 means the source
// length is unknown and only the lower bound applies). Returns nil when the
// shot is unknown or carries no media layers to slip.
func SlipEdit(shotID string, deltaFrames int, shots []models.Shot) *SlipResult {
	idx := shotIndex(shotID, shots)
	if idx < 0 {
		return nil
	}

	var trims []LayerTrim
	for _, layer := range shots[idx].Layers {
		media, isMedia := layer.Data.(*models.MediaData)
		if layer.Type != models.LayerTypeMedia || !isMedia {
			continue
		}
		window := media.TrimOut - media.TrimIn
		newIn := media.TrimIn + deltaFrames
		if media.SourceDuration > 0 {
			maxIn := media.SourceDuration - window
			if maxIn < 0 {
				maxIn = 0
			}
			newIn = clamp(newIn, 0, maxIn)
		} else if newIn < 0 {
			newIn = 0
		}
		trims = append(trims, LayerTrim{
			LayerID:    layer.ID,
			NewTrimIn:  newIn,
			NewTrimOut: newIn + window,
		})
	}
	if len(trims) == 0 {
		return nil
	}
	return &SlipResult{Layers: trims}
}

// SlideResult is the delta produced by SlideEdit. Neighbor fields are nil
// when the slid shot has no neighbor on that side.
type SlideResult struct {
	NewStartTime      int  `json:"new_start_time"`
	LeftNewDuration   *int `json:"left_new_duration,omitempty"`
	RightNewStartTime *int `json:"right_new_start_time,omitempty"`
	RightNewDuration  *int `json:"right_new_duration,omitempty"`
}

// SlideEdit moves a shot by deltaFrames while its list-order neighbors absorb
// the change: the left neighbor's end stays glued to the slid shot's new
// start (its own start fixed), and the right neighbor's start moves to the
// slid shot's new end (its own end fixed), so no gap or overlap appears. The
// slid shot's duration never changes.
//
// The requested delta is bounded once by every applicable constraint — both
// neighbors keeping at least DefaultMinDuration, and the shot not crossing
// frame 0 — before being applied anywhere, so all three shots agree on the
// boundaries. Returns nil when shotID is not in the list.
func SlideEdit(shotID string, deltaFrames int, shots []models.Shot) *SlideResult {
	left, right, ok := FindAdjacentShots(shotID, shots)
	if !ok {
		return nil
	}
	shot := shots[shotIndex(shotID, shots)]

	effective := deltaFrames
	if lo := -shot.StartTime; effective < lo {
		effective = lo
	}
	if left != nil {
		// Left neighbor duration becomes (slid new start - left start).
		if lo := left.StartTime + DefaultMinDuration - shot.StartTime; effective < lo {
			effective = lo
		}
	}
	if right != nil {
		// Right neighbor duration becomes (right end - slid new end).
		if hi := right.EndTime() - shot.EndTime() - DefaultMinDuration; effective > hi {
			effective = hi
		}
	}

	newStart := shot.StartTime + effective
	result := &SlideResult{NewStartTime: newStart}
	if left != nil {
		d := newStart - left.StartTime
		result.LeftNewDuration = &d
	}
	if right != nil {
		start := newStart + shot.Duration
		dur := right.EndTime() - start
		result.RightNewStartTime = &start
		result.RightNewDuration = &dur
	}
	return result
}
