//go:build !tinygo

package app

import (
	"tinysched/hal"
	"tinysched/kernel"
)

// newTimer builds the host stand-in for the scheduler's compare-match
// timer: a software flag pair driven by the run loop's own tick, not a
// real hardware interrupt.
func newTimer(h hal.HAL) kernel.TimerLine {
	return kernel.NewSoftwareTimerLine()
}
