//go:build tinygo && baremetal

package kernel

import "runtime/interrupt"

// avrTimerLine wraps the scheduler's own compare-match interrupt, already
// registered by the boot sequence via interrupt.New, into a TimerLine. The
// global interrupt-enable side is tracked as a shadow flag backed by
// interrupt.Disable/interrupt.Restore: the gate is the sole owner of this
// flag in the core's design, so a shadow boolean and the saved restore
// token it implies never drift from the CPU's real SREG bit.
type avrTimerLine struct {
	irq   interrupt.Interrupt
	armed bool

	globalEnabled bool
	savedState    interrupt.State
}

// NewHardwareTimerLine builds a TimerLine around irq, the already-registered
// scheduler compare-match interrupt. Both the timer and the global flag
// start enabled, matching the state left by the boot sequence.
func NewHardwareTimerLine(irq interrupt.Interrupt) TimerLine {
	irq.Enable()
	return &avrTimerLine{irq: irq, armed: true, globalEnabled: true}
}

func (t *avrTimerLine) Disarm() {
	if t.armed {
		t.irq.Disable()
		t.armed = false
	}
}

func (t *avrTimerLine) Arm() {
	if !t.armed {
		t.irq.Enable()
		t.armed = true
	}
}

func (t *avrTimerLine) GlobalInterruptFlag() bool { return t.globalEnabled }

func (t *avrTimerLine) SetGlobalInterruptFlag(enabled bool) {
	if enabled == t.globalEnabled {
		return
	}
	if enabled {
		interrupt.Restore(t.savedState)
	} else {
		t.savedState = interrupt.Disable()
	}
	t.globalEnabled = enabled
}
