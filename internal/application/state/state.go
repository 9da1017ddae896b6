// Package state tracks where a scene is in its lifecycle.
package state

// Lifecycle represents the lifecycle stage of a scene
type Lifecycle int

const (
	Uninitialized Lifecycle = iota
	Active
	Finished
)

// String returns the string representation of the lifecycle stage
func (l Lifecycle) String() string {
	switch l {
	case Uninitialized:
		return "Uninitialized"
	case Active:
		return "Active"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// CanTransition reports whether a scene may move from l to next.
// Scenes are initialized once and finished once; a finished scene is
// re-initialized when it is entered again.
func (l Lifecycle) CanTransition(next Lifecycle) bool {
	switch l {
	case Uninitialized:
		return next == Active
	case Active:
		return next == Finished
	case Finished:
		return next == Active
	default:
		return false
	}
}

// CanUpdate reports whether per-frame logic may run.
func (l Lifecycle) CanUpdate() bool {
	return l == Active
}
