package playback

// recentCap bounds the recency list; older labels fall off the end.
const recentCap = 5

// Recent is a bounded, most-recent-first list of played labels, deduplicated by
// label. Pure UI memory: it is never persisted.
type Recent struct {
	labels []string
}

// Push moves the label to the front, removing any previous occurrence, and trims the
// list to its cap.
func (r *Recent) Push(label string) {
	filtered := make([]string, 0, len(r.labels)+1)
	filtered = append(filtered, label)
	for _, existing := range r.labels {
		if existing != label {
			filtered = append(filtered, existing)
		}
	}

	if len(filtered) > recentCap {
		filtered = filtered[:recentCap]
	}
	r.labels = filtered
}

// Items returns the labels, most recent first.
func (r *Recent) Items() []string {
	return r.labels
}
