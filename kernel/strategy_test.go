package kernel

import "testing"

func readyTable(pids ...ProcessID) *[MaxProcesses]Descriptor {
	var table [MaxProcesses]Descriptor
	for _, pid := range pids {
		table[pid] = Descriptor{State: Ready, Priority: DefaultPriority}
	}
	return &table
}

func TestSelectEvenRoundsAscendingAndWraps(t *testing.T) {
	table := readyTable(1, 2, 3)
	var acct Accounting

	current := ProcessID(1)
	want := []ProcessID{2, 3, 1, 2, 3, 1, 2, 3}
	for i, w := range want {
		current = Select(Even, table, &acct, current)
		if current != w {
			t.Fatalf("pick %d: got %d, want %d", i, current, w)
		}
	}
}

func TestSelectEvenFallsBackToIdle(t *testing.T) {
	var table [MaxProcesses]Descriptor
	var acct Accounting
	if got := Select(Even, &table, &acct, 0); got != 0 {
		t.Fatalf("got %d, want 0 (idle)", got)
	}
}

func TestSelectRandomMatchesLockedDownSequence(t *testing.T) {
	table := readyTable(1, 2, 3)
	var acct Accounting
	acct.Reset(Random)

	want := []ProcessID{
		3, 2, 1, 2, 2, 3, 1, 1, 1, 1, 2, 3, 1, 1, 3, 3,
		1, 1, 1, 1, 3, 2, 3, 1, 1, 1, 1, 3, 2, 3, 3, 3,
	}
	for i, w := range want {
		got := Select(Random, table, &acct, 0)
		if got != w {
			t.Fatalf("pick %d: got %d, want %d", i, got, w)
		}
	}
}

func TestSelectRoundRobinWeightsByPriority(t *testing.T) {
	// Priorities (2, 5, 17) and the starting slot match the controller
	// program's setup in the round-robin scheduling-strategy test from the
	// original coursework this scheduler is modeled on: pid 1 sets its own
	// priority to 2, then execs pid 2 at priority 5 and pid 3 at priority
	// 17. The want sequence below is the literal 32-sample trace that
	// program captured, so this test also pins the real priority weights
	// down against a reference neither derived from nor fitted to this
	// implementation.
	table := &[MaxProcesses]Descriptor{
		1: {State: Ready, Priority: 2},
		2: {State: Ready, Priority: 5},
		3: {State: Ready, Priority: 17},
	}
	var acct Accounting
	acct.Reset(RoundRobin)

	current := ProcessID(1)
	var got []ProcessID
	want := []ProcessID{
		1, 1, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3, 3,
		3, 3, 3, 3, 3, 3, 3, 3, 1, 1, 2, 2, 2, 2, 2, 3,
	}
	for i := range want {
		current = Select(RoundRobin, table, &acct, current)
		got = append(got, current)
		if got[i] != want[i] {
			t.Fatalf("pick %d: got %v, want %v", i, got, want)
		}
	}
}

func TestSelectInactiveAgingTieBreaksByLowestIndex(t *testing.T) {
	table := readyTable(1, 2, 3) // all DefaultPriority: a three-way tie every round
	var acct Accounting
	acct.Reset(InactiveAging)

	current := ProcessID(0)
	want := []ProcessID{1, 2, 3, 1, 2, 3}
	for i, w := range want {
		current = Select(InactiveAging, table, &acct, current)
		if current != w {
			t.Fatalf("pick %d: got %d, want %d", i, current, w)
		}
	}
}

func TestSelectInactiveAgingEventuallyRewardsStarvedSlot(t *testing.T) {
	table := &[MaxProcesses]Descriptor{
		1: {State: Ready, Priority: 1},
		2: {State: Ready, Priority: 1},
		3: {State: Ready, Priority: 3},
	}
	var acct Accounting
	acct.Reset(InactiveAging)

	// Priority 3 dominates at first (it ages itself the fastest on reset),
	// but starved slots 1 and 2 must eventually catch up and win a turn.
	current := ProcessID(0)
	want := []ProcessID{3, 3, 3, 1, 3}
	for i, w := range want {
		current = Select(InactiveAging, table, &acct, current)
		if current != w {
			t.Fatalf("pick %d: got %d, want %d", i, current, w)
		}
	}
}

func TestSelectInactiveAgingWinnerAgeResetsToPriority(t *testing.T) {
	table := &[MaxProcesses]Descriptor{
		1: {State: Ready, Priority: 250},
	}
	var acct Accounting
	acct.Reset(InactiveAging)
	acct.age[1] = 200 // 200+250 overflows a uint8; must clamp, not wrap, before the win resets it anyway

	Select(InactiveAging, table, &acct, 0)

	if acct.age[1] != 250 {
		t.Fatalf("age[1] = %d, want 250 (the winner's age resets to its own priority)", acct.age[1])
	}
}

func TestSelectInactiveAgingClampsAgingBeforeComparing(t *testing.T) {
	table := &[MaxProcesses]Descriptor{
		1: {State: Ready, Priority: 55},  // 201+55 == 256: one past the uint8 range, must clamp to 255
		2: {State: Ready, Priority: 200}, // higher priority wins the resulting tie, so slot 1 loses and keeps its clamped age
	}
	var acct Accounting
	acct.Reset(InactiveAging)
	acct.age[1] = 201
	acct.age[2] = 255
	acct.lastChosenAging = 2 // slot 2 is exempt from aging this round

	got := Select(InactiveAging, table, &acct, 0)

	if got != 2 {
		t.Fatalf("got %d, want 2 (tie-break by priority)", got)
	}
	if acct.age[1] != 255 {
		t.Fatalf("age[1] = %d, want clamped to 255 (201+55 must not wrap)", acct.age[1])
	}
}

func TestSelectRunToCompletionSticksToCurrent(t *testing.T) {
	table := readyTable(1, 2, 3)
	var acct Accounting

	for i := 0; i < 5; i++ {
		if got := Select(RunToCompletion, table, &acct, 2); got != 2 {
			t.Fatalf("pick %d: got %d, want 2 (sticky)", i, got)
		}
	}

	(*table)[2] = Descriptor{State: Unused}
	if got := Select(RunToCompletion, table, &acct, 2); got != 1 {
		t.Fatalf("got %d, want 1 (lowest runnable once current stops running)", got)
	}
}

func TestBlockedIsNotRunnable(t *testing.T) {
	table := &[MaxProcesses]Descriptor{
		1: {State: Blocked, Priority: DefaultPriority},
		2: {State: Ready, Priority: DefaultPriority},
	}
	var acct Accounting
	if got := Select(Even, table, &acct, 0); got != 2 {
		t.Fatalf("got %d, want 2 (blocked slot must be skipped)", got)
	}
}

func TestStrategyString(t *testing.T) {
	cases := map[Strategy]string{
		Even:            "even",
		Random:          "random",
		RoundRobin:      "round-robin",
		InactiveAging:   "inactive-aging",
		RunToCompletion: "run-to-completion",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}
