package app

import (
	"reflect"

	"tinysched/kernel"
)

// idleProgram is exec'd into slot 0 by InitScheduler. On real hardware it's
// a tight "sleep until interrupt" loop; here it never runs (Tick never
// calls a Descriptor's Program field directly — the trampoline at the real
// target's TrampolineAddress does), so the body only has to satisfy the
// "never returns" contract.
func idleProgram() {
	for {
	}
}

// blinkerProgram stands in for a periodic housekeeping task, e.g. toggling
// the board LED once per slice.
func blinkerProgram() {
	for {
	}
}

// loggerProgram stands in for a low-priority background task that drains a
// queue when it gets a slice.
func loggerProgram() {
	for {
	}
}

// watchdogProgram stands in for a task that must be scheduled frequently,
// e.g. a sensor poll with a tight deadline. It is exec'd directly with an
// elevated priority rather than through the autostart list, since autostart
// entries always land at DefaultPriority.
func watchdogProgram() {
	for {
	}
}

// programLabels maps a program to the label the status line shows for it.
var programLabels = map[uintptr]string{}

func label(p kernel.Program, name string) kernel.Program {
	programLabels[programKey(p)] = name
	return p
}

func labelFor(p kernel.Program) string {
	if p == nil {
		return "-"
	}
	if name, ok := programLabels[programKey(p)]; ok {
		return name
	}
	return "?"
}

func programKey(p kernel.Program) uintptr {
	return reflect.ValueOf(p).Pointer()
}

func init() {
	kernel.RegisterAutostart(label(blinkerProgram, "blinker"))
	kernel.RegisterAutostart(label(loggerProgram, "logger"))
	label(idleProgram, "idle")
	label(watchdogProgram, "watchdog")
}
