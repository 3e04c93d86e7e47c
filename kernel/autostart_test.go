package kernel

import (
	"reflect"
	"testing"
)

// withCleanAutostart saves and restores the package-level autostart table
// around t, so registrations made by the test don't leak into others.
func withCleanAutostart(t *testing.T) {
	saved := autostart
	autostart = nil
	t.Cleanup(func() { autostart = saved })
}

func programIdentity(p Program) uintptr {
	return reflect.ValueOf(p).Pointer()
}

func autostartProgramA() {}
func autostartProgramB() {}
func autostartProgramC() {}

func TestRegisterAutostartPreservesRegistrationOrder(t *testing.T) {
	withCleanAutostart(t)

	RegisterAutostart(autostartProgramA)
	RegisterAutostart(autostartProgramB)
	RegisterAutostart(autostartProgramC)

	got := Autostart()
	want := []Program{autostartProgramA, autostartProgramB, autostartProgramC}
	if len(got) != len(want) {
		t.Fatalf("len(Autostart()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if programIdentity(got[i]) != programIdentity(want[i]) {
			t.Fatalf("program %d: got a different func value than registered", i)
		}
	}
}

func TestAutostartReturnsACopyNotAnAlias(t *testing.T) {
	withCleanAutostart(t)

	RegisterAutostart(autostartProgramA)

	got := Autostart()
	got[0] = nil

	if Autostart()[0] == nil {
		t.Fatal("mutating the slice returned by Autostart mutated the backing table")
	}
}

func TestAutostartOnEmptyTable(t *testing.T) {
	withCleanAutostart(t)

	if got := Autostart(); len(got) != 0 {
		t.Fatalf("Autostart() on an empty table = %v, want empty", got)
	}
}
