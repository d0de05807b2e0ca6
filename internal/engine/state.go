package engine

// State is the playback state derived from the cursor.
type State int

const (
	// Ready means cursor == 0 and the view equals the snapshot.
	Ready State = iota

	// InProgress means 0 < cursor < OpCount().
	InProgress

	// Complete means cursor == OpCount(). An empty log is Complete from the start.
	Complete
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case InProgress:
		return "in_progress"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}
