package kernel

import "fmt"

// Table is the fixed process table: one descriptor per possible process,
// slot 0 reserved for idle.
type Table [MaxProcesses]Descriptor

// TrampolineAddress is the fixed entry point exec writes into every
// synthetic context's program-counter word. The real jump target for a
// given slot lives in Descriptor.Program; the trampoline address only ever
// sits in the synthetic context, where the stack checksum covers it. Picking a fixed address and using it consistently (instead of
// writing each program's own address) is the "dispatcher trampoline" mode
// described for exec; the alternative ("direct") mode is not used here.
const TrampolineAddress uint16 = 0x0004

// Scheduler owns the process table, the stack region backing it, the
// critical-section gate, and the active scheduling strategy's accounting.
// Nothing here allocates after construction.
type Scheduler struct {
	mem   Memory
	table Table

	current  ProcessID
	strategy Strategy
	acct     Accounting

	gate  *Gate
	timer TimerLine
	fatal func(string)

	started bool
}

// New builds a scheduler around the given timer line. fatal is invoked for
// gate misuse and stack corruption; it is expected to halt (it is called
// from within the ISR's logical context and must not return normally, or
// the scheduler will proceed with a corrupted or unverified context).
func New(timer TimerLine, fatal func(string)) *Scheduler {
	if fatal == nil {
		fatal = func(string) {}
	}
	s := &Scheduler{timer: timer, fatal: fatal}
	s.gate = NewGate(timer, fatal)
	return s
}

// GetProcessSlot returns a pointer to pid's descriptor. Like the original,
// this is an unchecked index: callers must keep pid < MaxProcesses.
func (s *Scheduler) GetProcessSlot(pid ProcessID) *Descriptor {
	return &s.table[pid]
}

// CurrentPid returns the currently running process.
func (s *Scheduler) CurrentPid() ProcessID { return s.current }

// SetStrategy installs a new scheduling strategy, leaving its accounting as
// it was left by prior use.
func (s *Scheduler) SetStrategy(strategy Strategy) { s.strategy = strategy }

// GetStrategy returns the active scheduling strategy.
func (s *Scheduler) GetStrategy() Strategy { return s.strategy }

// ResetStrategy clears the accounting owned by the active strategy.
func (s *Scheduler) ResetStrategy() { s.acct.Reset(s.strategy) }

// StackChecksum recomputes pid's stack checksum from the current bytes in
// its window, independent of whatever is cached in the descriptor.
func (s *Scheduler) StackChecksum(pid ProcessID) uint8 {
	return foldChecksum(&s.mem, s.table[pid].SP, ProcessStackBottom(pid))
}

// EnterCriticalSection masks the scheduler timer, nesting safely.
func (s *Scheduler) EnterCriticalSection() { s.gate.Enter() }

// LeaveCriticalSection unmasks the scheduler timer once nesting unwinds to zero.
func (s *Scheduler) LeaveCriticalSection() { s.gate.Leave() }

// Exec finds a free slot, synthesizes an initial context for program on
// that slot's stack, and marks it READY. It is safe to call from inside a
// critical section or from another process, never blocks, and never invokes
// the active strategy.
func (s *Scheduler) Exec(program Program, priority Priority) ProcessID {
	s.gate.Enter()
	defer s.gate.Leave()

	if program == nil {
		return InvalidProcess
	}

	var pid ProcessID = InvalidProcess
	for i := ProcessID(0); i < MaxProcesses; i++ {
		if s.table[i].State == Unused {
			pid = i
			break
		}
	}
	if pid == InvalidProcess {
		return InvalidProcess
	}

	var ctx SavedContext
	ctx.SetPC(TrampolineAddress)
	sp := writeContext(&s.mem, pid, ctx)
	checksum := foldChecksum(&s.mem, sp, ProcessStackBottom(pid))

	s.acct.ClearSlot(pid)
	s.table[pid] = Descriptor{
		State:    Ready,
		Priority: priority,
		Program:  program,
		SP:       sp,
		Checksum: checksum,
	}
	return pid
}

// InitScheduler resets the process table, execs idle into slot 0, then execs
// every registered autostart program in registration order. It must run
// before the scheduler timer is armed.
func (s *Scheduler) InitScheduler(idle Program, autostart []Program) error {
	s.table = Table{}
	s.acct = Accounting{}
	s.acct.Reset(s.strategy)
	s.current = 0

	idlePid := s.Exec(idle, DefaultPriority)
	if idlePid != 0 {
		return fmt.Errorf("scheduler: idle process did not land in slot 0 (got %d)", idlePid)
	}
	s.table[0].State = Running

	for _, program := range autostart {
		if s.Exec(program, DefaultPriority) == InvalidProcess {
			return fmt.Errorf("scheduler: no free slot for autostart program")
		}
	}
	return nil
}

// StartScheduler arms the scheduler timer. Control is expected to fall
// through into the idle process immediately afterward; StartScheduler itself
// never calls it.
func (s *Scheduler) StartScheduler() {
	s.started = true
	s.timer.Arm()
}

// Tick is the portable core of the scheduler ISR: context save bookkeeping,
// stack-integrity check, strategy dispatch, and context restore bookkeeping.
// The hardware push that produced saved and the hardware pop that will
// consume the returned context are the caller's responsibility (a naked ISR
// on the real target, a test harness here).
func (s *Scheduler) Tick(saved SavedContext) SavedContext {
	running := &s.table[s.current]

	sp := writeContext(&s.mem, s.current, saved)
	running.SP = sp
	running.Checksum = foldChecksum(&s.mem, sp, ProcessStackBottom(s.current))

	if running.State == Running {
		running.State = Ready
	}

	next := Select(s.strategy, (*[MaxProcesses]Descriptor)(&s.table), &s.acct, s.current)
	nextDesc := &s.table[next]

	check := foldChecksum(&s.mem, nextDesc.SP, ProcessStackBottom(next))
	if check != nextDesc.Checksum {
		s.fatal(fmt.Sprintf("stack corruption detected in process %d", next))
		return saved
	}

	nextDesc.State = Running
	s.current = next
	return readContext(&s.mem, nextDesc.SP)
}
