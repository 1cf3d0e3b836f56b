// Package timeline implements the non-destructive edit engine for shot
// sequences. Every operation takes a snapshot of the ordered shot list plus
// parameters and returns either a delta describing the new field values or a
// nil result meaning "operation not applicable". Inputs are never mutated and
// no state is held between calls; applying deltas, history capture and
// persistence belong to the caller.
package timeline

import "shotflow/editor-service/models"

// Edge classifies where a frame sits relative to a shot.
type Edge string

const (
	EdgeStart  Edge = "start"
	EdgeEnd    Edge = "end"
	EdgeMiddle Edge = "middle"
)

// shotIndex returns the list index of the shot with the given ID, or -1.
func shotIndex(shotID string, shots []models.Shot) int {
	for i := range shots {
		if shots[i].ID == shotID {
			return i
		}
	}
	return -1
}

// FindShotAtFrame returns the first shot whose half-open interval
// [StartTime, StartTime+Duration) contains frame, or nil. Shots are assumed
// non-overlapping; the returned pointer aliases the input slice and must be
// treated as read-only.
func FindShotAtFrame(frame int, shots []models.Shot) *models.Shot {
	for i := range shots {
		if shots[i].Contains(frame) {
			return &shots[i]
		}
	}
	return nil
}

// FindAdjacentShots returns the list-order neighbors of the given shot:
// left is the shot one index before it, right one index after, either nil at
// the ends. Adjacency here is list order, independent of frame contiguity.
// ok is false when shotID is not in the list.
func FindAdjacentShots(shotID string, shots []models.Shot) (left, right *models.Shot, ok bool) {
	idx := shotIndex(shotID, shots)
	if idx < 0 {
		return nil, nil, false
	}
	if idx > 0 {
		left = &shots[idx-1]
	}
	if idx < len(shots)-1 {
		right = &shots[idx+1]
	}
	return left, right, true
}

// AreShotsAdjacent reports whether a immediately precedes b on the timeline,
// frame-exact: a's end frame equals b's start frame.
func AreShotsAdjacent(a, b models.Shot) bool {
	return a.StartTime+a.Duration == b.StartTime
}

// ShotEdge classifies frame against a shot's edges. A frame within threshold
// of the start is EdgeStart, within threshold of the end EdgeEnd, otherwise
// EdgeMiddle. On a very short shot where both edges qualify the nearer edge
// wins; an exact tie resolves to EdgeStart.
func ShotEdge(frame, shotStart, shotDuration, threshold int) Edge {
	fromStart := frame - shotStart
	fromEnd := (shotStart + shotDuration) - frame

	nearStart := fromStart <= threshold
	nearEnd := fromEnd <= threshold

	switch {
	case nearStart && nearEnd:
		if abs(fromEnd) < abs(fromStart) {
			return EdgeEnd
		}
		return EdgeStart
	case nearStart:
		return EdgeStart
	case nearEnd:
		return EdgeEnd
	default:
		return EdgeMiddle
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
