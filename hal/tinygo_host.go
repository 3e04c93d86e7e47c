//go:build tinygo && !baremetal

package hal

import (
	"fmt"
	"runtime"
	"time"
)

type tinyGoHostHAL struct {
	logger  *tinyGoHostLogger
	led     *tinyGoHostLED
	t       *tinyGoHostTime
	lcd     *tinyGoHostLCD
	buttons *tinyGoHostButtons
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU
// pin mapping, so the LCD and buttons are println/no-op stand-ins rather
// than real hardware drivers.
func New() HAL {
	l := &tinyGoHostLogger{}
	return &tinyGoHostHAL{
		logger:  l,
		led:     &tinyGoHostLED{logger: l},
		t:       newTinyGoHostTime(),
		lcd:     &tinyGoHostLCD{logger: l},
		buttons: &tinyGoHostButtons{},
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) LED() LED         { return h.led }
func (h *tinyGoHostHAL) Time() Time       { return h.t }
func (h *tinyGoHostHAL) LCD() LCD         { return h.lcd }
func (h *tinyGoHostHAL) Buttons() Buttons { return h.buttons }

// tinyGoHostLCD has no character display to drive, so it mirrors each
// write to the logger, the same fallback hostLCD uses in headless mode.
type tinyGoHostLCD struct {
	logger *tinyGoHostLogger
	rows   [2]string
}

func (l *tinyGoHostLCD) WriteLine(row int, text string) {
	if row != 0 && row != 1 {
		return
	}
	if len(text) > lcdColumns {
		text = text[:lcdColumns]
	}
	for len(text) < lcdColumns {
		text += " "
	}
	l.rows[row] = text
	l.logger.WriteLineString(fmt.Sprintf("lcd[%d]: %s", row, text))
}

func (l *tinyGoHostLCD) Clear() {
	l.rows[0] = ""
	l.rows[1] = ""
	l.logger.WriteLineString("lcd: clear")
}

// tinyGoHostButtons has no physical buttons wired on this target; it
// satisfies the interface without blocking the fatal-error prompt forever.
type tinyGoHostButtons struct{}

func (tinyGoHostButtons) WaitForPress() Button  { return ButtonSelect }
func (tinyGoHostButtons) WaitForRelease(Button) {}

type tinyGoHostTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoHostTime() *tinyGoHostTime {
	t := &tinyGoHostTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoHostTime) Ticks() <-chan uint64 { return t.ch }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostLED struct {
	on     bool
	logger *tinyGoHostLogger
}

func (l *tinyGoHostLED) High() {
	l.on = true
	l.logger.WriteLineString(fmt.Sprintf("led: HIGH (tinygo/%s)", runtime.GOOS))
}

func (l *tinyGoHostLED) Low() {
	l.on = false
	l.logger.WriteLineString(fmt.Sprintf("led: LOW (tinygo/%s)", runtime.GOOS))
}
