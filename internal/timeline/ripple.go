package timeline

import "shotflow/editor-service/models"

// ShotShift records the new start frame computed for one shifted shot.
type ShotShift struct {
	ShotID       string `json:"shot_id"`
	NewStartTime int    `json:"new_start_time"`
}

// RippleResult is the delta produced by RippleEdit.
type RippleResult struct {
	NewDuration   int         `json:"new_duration"`
	AffectedShots []ShotShift `json:"affected_shots"`
}

// RippleEdit trims a shot's end edge and shifts every shot after it in list
// order by the same delta, closing the gap (or making room) the trim created.
// Shots before the edited one are untouched.
//
// Only the end edge is supported; a start-edge ripple has no defined
// contract and returns nil, as does an unknown shotID. The delta is bounded
// so the edited shot keeps at least DefaultMinDuration, and the shift applied
// to later shots is that same bounded delta, so no overlap is introduced by
// the clamp.
func RippleEdit(shotID string, edge Edge, deltaFrames int, shots []models.Shot) *RippleResult {
	if edge != EdgeEnd {
		return nil
	}
	idx := shotIndex(shotID, shots)
	if idx < 0 {
		return nil
	}
	shot := shots[idx]

	newDuration := shot.Duration + deltaFrames
	if newDuration < DefaultMinDuration {
		newDuration = DefaultMinDuration
	}
	effective := newDuration - shot.Duration

	affected := make([]ShotShift, 0, len(shots)-idx-1)
	for _, s := range shots[idx+1:] {
		affected = append(affected, ShotShift{
			ShotID:       s.ID,
			NewStartTime: s.StartTime + effective,
		})
	}
	return &RippleResult{NewDuration: newDuration, AffectedShots: affected}
}

// RollResult is the delta produced by RollEdit.
type RollResult struct {
	LeftNewDuration   int `json:"left_new_duration"`
	RightNewStartTime int `json:"right_new_start_time"`
	RightNewDuration  int `json:"right_new_duration"`
}

// RollEdit moves the shared boundary between two frame-adjacent shots by
// deltaFrames, growing one side and shrinking the other. The requested delta
// is bounded once, up front, to the range that keeps both shots at or above
// minDuration, so the two sides always agree on where the boundary sits.
// Returns nil when either ID is unknown or the left shot does not end exactly
// where the right shot starts.
func RollEdit(leftID, rightID string, deltaFrames int, shots []models.Shot, minDuration int) *RollResult {
	leftIdx := shotIndex(leftID, shots)
	rightIdx := shotIndex(rightID, shots)
	if leftIdx < 0 || rightIdx < 0 {
		return nil
	}
	left, right := shots[leftIdx], shots[rightIdx]
	if !AreShotsAdjacent(left, right) {
		return nil
	}
	if minDuration <= 0 {
		minDuration = DefaultMinDuration
	}

	// Bound the delta so left.Duration+delta and right.Duration-delta both
	// stay >= minDuration.
	effective := deltaFrames
	if lo := minDuration - left.Duration; effective < lo {
		effective = lo
	}
	if hi := right.Duration - minDuration; effective > hi {
		effective = hi
	}

	leftNewDuration := left.Duration + effective
	rightNewStartTime := left.StartTime + leftNewDuration
	rightNewDuration := right.EndTime() - rightNewStartTime

	return &RollResult{
		LeftNewDuration:   leftNewDuration,
		RightNewStartTime: rightNewStartTime,
		RightNewDuration:  rightNewDuration,
	}
}
