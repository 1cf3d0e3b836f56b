package timeline

// SelectTool computes the next selection set. A single select replaces the
// whole selection with the one shot; a multi select (shift/cmd-click) toggles
// the shot's membership. The input slice is never modified.
func SelectTool(selection []string, shotID string, multi bool) []string {
	if !multi {
		return []string{shotID}
	}

	next := make([]string, 0, len(selection)+1)
	removed := false
	for _, id := range selection {
		if id == shotID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, shotID)
	}
	return next
}
