//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

// pinButtons reads four momentary push buttons wired active-low with
// internal pull-ups, one GPIO per logical button.
type pinButtons struct {
	pins [4]machine.Pin
	ids  [4]Button
}

func newPinButtons() *pinButtons {
	b := &pinButtons{
		pins: [4]machine.Pin{machine.GP16, machine.GP17, machine.GP18, machine.GP19},
		ids:  [4]Button{ButtonUp, ButtonDown, ButtonSelect, ButtonBack},
	}
	for _, pin := range b.pins {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	return b
}

func (b *pinButtons) pressed() Button {
	for i, pin := range b.pins {
		if !pin.Get() {
			return b.ids[i]
		}
	}
	return ButtonUnknown
}

func (b *pinButtons) WaitForPress() Button {
	for {
		if id := b.pressed(); id != ButtonUnknown {
			return id
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func (b *pinButtons) WaitForRelease(target Button) {
	for {
		held := false
		for i, pin := range b.pins {
			if b.ids[i] == target && !pin.Get() {
				held = true
			}
		}
		if !held {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}
