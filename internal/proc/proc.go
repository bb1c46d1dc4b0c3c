// Package proc probes whether the owner of a lock marker is still running.
//
// The probe is informational. Lock acquisition never consults it, because a
// recycled PID makes a stale marker look alive.
package proc

// Liveness is the result of probing an owner.
type Liveness int

const (
	Unknown Liveness = iota
	Running
	Gone
)

func (l Liveness) String() string {
	switch l {
	case Running:
		return "running"
	case Gone:
		return "gone"
	default:
		return "unknown"
	}
}
