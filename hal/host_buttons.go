//go:build !tinygo

package hal

// hostButtons maps the four physical buttons onto arrow/enter/escape key
// events from the shared host keyboard, so the same window used for the
// framebuffer doubles as the input device in development.
type hostButtons struct {
	kbd *hostKeyboard
}

func newHostButtons(kbd *hostKeyboard) *hostButtons {
	return &hostButtons{kbd: kbd}
}

func (b *hostButtons) WaitForPress() Button {
	for ev := range b.kbd.Events() {
		if !ev.Press {
			continue
		}
		if btn, ok := buttonForKey(ev.Code); ok {
			return btn
		}
	}
	return ButtonSelect
}

func (b *hostButtons) WaitForRelease(Button) {
	for ev := range b.kbd.Events() {
		if !ev.Press {
			return
		}
	}
}

func buttonForKey(code KeyCode) (Button, bool) {
	switch code {
	case KeyUp:
		return ButtonUp, true
	case KeyDown:
		return ButtonDown, true
	case KeyEnter:
		return ButtonSelect, true
	case KeyEscape, KeyBackspace:
		return ButtonBack, true
	default:
		return ButtonUnknown, false
	}
}
