package kernel

import "testing"

func TestIsRunnable(t *testing.T) {
	cases := []struct {
		state ProcessState
		want  bool
	}{
		{Unused, false},
		{Ready, true},
		{Running, true},
		{Blocked, false},
	}
	for _, c := range cases {
		d := Descriptor{State: c.state}
		if got := IsRunnable(&d); got != c.want {
			t.Errorf("IsRunnable(%v) = %v, want %v", c.state, got, c.want)
		}
	}
}

func TestProcessStackBottomTilesWithoutGaps(t *testing.T) {
	for pid := ProcessID(0); pid < MaxProcesses-1; pid++ {
		bottom := ProcessStackBottom(pid)
		nextBottom := ProcessStackBottom(pid + 1)
		top := bottom - StackSizeProc + 1
		if nextBottom != top-1 {
			t.Fatalf("pid %d window [.., %d] does not sit directly above pid %d's bottom %d", pid, bottom, pid+1, nextBottom)
		}
	}
}

func TestStackRegionsDoNotOverlap(t *testing.T) {
	lowestProcAddr := ProcessStackBottom(MaxProcesses-1) - StackSizeProc + 1
	if lowestProcAddr < 0 {
		t.Fatalf("process stacks run below address 0: %d", lowestProcAddr)
	}
	if BottomOfProcsStack >= BottomOfISRStack {
		t.Fatalf("proc stack region overlaps ISR stack")
	}
	if BottomOfISRStack >= BottomOfMainStack {
		t.Fatalf("ISR stack overlaps main stack")
	}
}
