package kernel

// ProcessID identifies a slot in the process table. Slot 0 is the idle
// process and always exists once the scheduler has been initialized.
type ProcessID uint8

// InvalidProcess is returned by Exec and friends to signal "no process".
const InvalidProcess ProcessID = 255

// DefaultPriority is used by callers that don't care about scheduling weight.
const DefaultPriority Priority = 2

// Priority is a scheduling weight; higher values run more often under the
// weighted strategies. It is never interpreted as a deadline or a signal
// value, only as relative weight.
type Priority uint8

// ProcessState is the lifecycle state of a process-table slot.
type ProcessState uint8

const (
	Unused ProcessState = iota
	Ready
	Running
	Blocked
)

func (s ProcessState) String() string {
	switch s {
	case Unused:
		return "unused"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Blocked:
		return "blocked"
	default:
		return "invalid"
	}
}

// Program is a zero-argument, never-returning entry point. The scheduler
// never expects it to return; voluntary termination is handled by callers
// clearing the slot's state themselves, not by the program returning.
type Program func()

// Descriptor is one process-table slot.
type Descriptor struct {
	State    ProcessState
	Priority Priority
	Program  Program
	SP       int
	Checksum uint8
}

// IsRunnable reports whether d can be selected by a scheduling strategy.
func IsRunnable(d *Descriptor) bool {
	return d.State == Ready || d.State == Running
}
