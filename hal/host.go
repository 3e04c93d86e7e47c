//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger  *hostLogger
	led     *hostLED
	fb      *hostFramebuffer
	kbd     *hostKeyboard
	t       *hostTime
	lcd     *hostLCD
	buttons *hostButtons
}

// New returns a host HAL implementation.
func New() HAL {
	logger := &hostLogger{w: os.Stdout}
	t := newHostTime()
	led := &hostLED{logger: logger}
	fb := newHostFramebuffer(320, 320)
	kbd := newHostKeyboard()
	return &hostHAL{
		logger:  logger,
		led:     led,
		fb:      fb,
		kbd:     kbd,
		t:       t,
		lcd:     newHostLCD(fb, logger),
		buttons: newHostButtons(kbd),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) LCD() LCD         { return h.lcd }
func (h *hostHAL) Buttons() Buttons { return h.buttons }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
	l.logger.WriteLineString("led: HIGH")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
	l.logger.WriteLineString("led: LOW")
}
