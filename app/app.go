package app

import (
	"fmt"

	"tinysched/hal"
	"tinysched/kernel"
)

// Config selects the scheduling strategy the boot sequence installs before
// arming the timer. Buttons cycle through the five strategies afterward.
type Config struct {
	Strategy kernel.Strategy
}

type system struct {
	h     hal.HAL
	sched *kernel.Scheduler
	last  kernel.SavedContext

	pressed chan hal.Button
}

// New wires a scheduler around h and returns the per-host-tick step
// function the HAL run loops call once per frame. It mirrors what the real
// target's boot routine does before falling through into idle: init the
// timer and button/display drivers, build the process table, arm the timer.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{Strategy: kernel.Even})
}

// NewWithConfig is New with an explicit initial strategy.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	sys := newSystem(h, cfg)
	return sys.step
}

// Run builds the system and blocks forever, stepping it in a tight loop.
// It's the TinyGo/native entrypoint; a desktop build drives step via its
// own frame loop instead (see hal.RunWindow / hal.RunHeadless).
func Run(h hal.HAL) {
	step := New(h)
	for {
		if err := step(); err != nil {
			return
		}
	}
}

func newSystem(h hal.HAL, cfg Config) *system {
	timer := newTimer(h)

	sink := kernel.NewErrorSink(lcdDisplay{lcd: h.LCD()}, newButtonInput(h.Buttons()), timer)
	fatal := kernel.FatalFunc(sink)

	sched := kernel.New(timer, fatal)
	sched.SetStrategy(cfg.Strategy)

	if err := sched.InitScheduler(idleProgram, kernel.Autostart()); err != nil {
		fatal(err.Error())
	}
	sched.Exec(watchdogProgram, 5)
	sched.StartScheduler()

	sys := &system{h: h, sched: sched, pressed: make(chan hal.Button, 1)}
	go sys.watchButtons()
	sys.render()
	return sys
}

// watchButtons blocks on the physical buttons in its own goroutine (the
// step function must never block) and forwards presses to step, which
// drains the channel without blocking.
func (s *system) watchButtons() {
	buttons := s.h.Buttons()
	if buttons == nil {
		return
	}
	for {
		b := buttons.WaitForPress()
		buttons.WaitForRelease(b)
		select {
		case s.pressed <- b:
		default:
		}
	}
}

var strategyCycle = []kernel.Strategy{
	kernel.Even,
	kernel.Random,
	kernel.RoundRobin,
	kernel.InactiveAging,
	kernel.RunToCompletion,
}

func (s *system) cycleStrategy() {
	current := s.sched.GetStrategy()
	for i, st := range strategyCycle {
		if st == current {
			s.sched.SetStrategy(strategyCycle[(i+1)%len(strategyCycle)])
			s.sched.ResetStrategy()
			return
		}
	}
	s.sched.SetStrategy(strategyCycle[0])
}

// step is the function the host run loops call once per frame. It stands
// in for the scheduler timer's compare-match interrupt: one firing per
// call, context save/checksum/select/restore all happening inside Tick.
func (s *system) step() error {
	select {
	case b := <-s.pressed:
		if b == hal.ButtonSelect {
			s.cycleStrategy()
		}
	default:
	}

	s.last = s.sched.Tick(s.last)
	s.render()
	return nil
}

func (s *system) render() {
	lcd := s.h.LCD()
	if lcd == nil {
		return
	}
	current := s.sched.CurrentPid()
	lcd.WriteLine(0, fmt.Sprintf("pid=%d %s", current, labelFor(s.sched.GetProcessSlot(current).Program)))
	lcd.WriteLine(1, "strategy: "+s.sched.GetStrategy().String())
}
