//go:build !tinygo

package hal

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// hostLCD renders the two character rows onto the shared host framebuffer
// (so it's visible in the same window as everything else) and mirrors each
// write to the logger, since a headless test run never looks at the window.
type hostLCD struct {
	fb     *hostFramebuffer
	logger *hostLogger
	font   tinyfont.Fonter
	rows   [2]string
}

func newHostLCD(fb *hostFramebuffer, logger *hostLogger) *hostLCD {
	return &hostLCD{fb: fb, logger: logger, font: &proggy.TinySZ8pt7b}
}

const lcdColumns = 16

func (l *hostLCD) WriteLine(row int, text string) {
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
	l.logger.WriteLineString("lcd[" + itoa(row) + "]: " + text)
	l.render()
}

func (l *hostLCD) Clear() {
	l.rows[0] = ""
	l.rows[1] = ""
	l.logger.WriteLineString("lcd: clear")
	l.render()
}

func (l *hostLCD) render() {
	if l.fb == nil {
		return
	}
	l.fb.ClearRGB(0, 0, 0)
	d := &fbDisplayer{fb: l.fb}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for row, text := range l.rows {
		tinyfont.WriteLine(d, l.font, 4, int16(12+row*14), text, white)
	}
}

func itoa(n int) string {
	return string(rune('0' + n))
}

// fbDisplayer adapts a Framebuffer to tinyfont's pixel-level drawing
// interface.
type fbDisplayer struct {
	fb *hostFramebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	w, h := d.fb.Width(), d.fb.Height()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}
	pixel := rgb565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }
