//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/hd44780"
)

// hd44780LCD drives a real two-line character display over a 4-bit GPIO
// bus. It buffers each row so WriteLine can pad/truncate before touching
// the hardware, the same contract hostLCD gives on the development build.
type hd44780LCD struct {
	dev  hd44780.Device
	rows [2]string
}

func newHD44780LCD() *hd44780LCD {
	rs := machine.GP10
	en := machine.GP11
	d4 := machine.GP12
	d5 := machine.GP13
	d6 := machine.GP14
	d7 := machine.GP15

	for _, pin := range []machine.Pin{rs, en, d4, d5, d6, d7} {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}

	dev := hd44780.NewGPIO4Bit(rs, en, d4, d5, d6, d7)
	dev.Configure(hd44780.Config{Width: lcdColumns, Height: 2})
	dev.ClearDisplay()

	return &hd44780LCD{dev: dev}
}

func (l *hd44780LCD) WriteLine(row int, text string) {
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
	l.dev.SetCursor(0, uint8(row))
	l.dev.Print([]byte(text))
}

func (l *hd44780LCD) Clear() {
	l.rows[0] = ""
	l.rows[1] = ""
	l.dev.ClearDisplay()
}
