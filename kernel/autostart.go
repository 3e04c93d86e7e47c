package kernel

// autostart is the explicit table of programs InitScheduler execs after
// idle. It replaces the compile-time linker chain the original build-time
// macro produced: programs register themselves here (typically from an
// init func in the package that defines them) and InitScheduler consumes
// the table in registration order, which keeps the order a test can assert
// on instead of leaving it to link order.
var autostart []Program

// RegisterAutostart appends program to the autostart table. It is meant to
// be called from package-level init funcs, before InitScheduler runs; it is
// not safe to call concurrently with InitScheduler.
func RegisterAutostart(program Program) {
	autostart = append(autostart, program)
}

// Autostart returns the programs registered so far, in registration order.
func Autostart() []Program {
	out := make([]Program, len(autostart))
	copy(out, autostart)
	return out
}
