//go:build tinygo && baremetal

package app

import (
	"runtime/interrupt"

	"tinysched/hal"
	"tinysched/kernel"
)

// schedulerTimerIRQ is the board's timer-compare interrupt line driving the
// scheduler tick.
//
// TODO: wire to the Pico 2 timer peripheral's actual IRQ number once a
// board-support package for it lands; 0 is a placeholder, not a real vector.
const schedulerTimerIRQ = 0

func newTimer(h hal.HAL) kernel.TimerLine {
	irq := interrupt.New(schedulerTimerIRQ, func(interrupt.Interrupt) {})
	return kernel.NewHardwareTimerLine(irq)
}
