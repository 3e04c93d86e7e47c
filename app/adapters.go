package app

import (
	"tinysched/hal"
	"tinysched/kernel"
)

// lcdDisplay satisfies kernel.Display by clearing the physical LCD, writing
// a "FATAL" header on the top row and the one-line error message the
// kernel's error sink passes on the bottom row.
type lcdDisplay struct {
	lcd hal.LCD
}

func (d lcdDisplay) DisplayErrorLine(msg string) {
	if d.lcd == nil {
		return
	}
	d.lcd.Clear()
	d.lcd.WriteLine(0, "FATAL")
	d.lcd.WriteLine(1, msg)
}

// buttonInput satisfies kernel.Input by blocking on any of the four
// physical buttons, remembering which one was pressed so WaitForRelease
// knows which edge to wait out.
type buttonInput struct {
	buttons hal.Buttons
	pressed *hal.Button
}

func newButtonInput(buttons hal.Buttons) buttonInput {
	return buttonInput{buttons: buttons, pressed: new(hal.Button)}
}

func (in buttonInput) WaitForPress() {
	if in.buttons == nil {
		return
	}
	*in.pressed = in.buttons.WaitForPress()
}

func (in buttonInput) WaitForRelease() {
	if in.buttons == nil {
		return
	}
	in.buttons.WaitForRelease(*in.pressed)
}

var (
	_ kernel.Display = lcdDisplay{}
	_ kernel.Input   = buttonInput{}
)
