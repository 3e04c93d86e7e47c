// Command schedtrace runs the scheduler core against a synthetic workload
// and prints the sequence of selected process IDs, the same bookkeeping
// the tests exercise but as a standalone tool for eyeballing a strategy's
// behavior over many ticks.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"tinysched/kernel"
)

func main() {
	var (
		strategy = flag.String("strategy", "even", "even|random|round-robin|inactive-aging|run-to-completion")
		ticks    = flag.Int("ticks", 32, "Number of scheduler ticks to simulate.")
		weights  = flag.String("priorities", "2,2,2", "Comma-separated priority for each non-idle process exec'd before the run.")
	)
	flag.Parse()

	st, err := parseStrategy(*strategy)
	if err != nil {
		fatalf("%v", err)
	}

	priorities, err := parsePriorities(*weights)
	if err != nil {
		fatalf("%v", err)
	}
	if len(priorities) == 0 || len(priorities) > kernel.MaxProcesses-1 {
		fatalf("priorities: need 1..%d entries, got %d", kernel.MaxProcesses-1, len(priorities))
	}

	timer := kernel.NewSoftwareTimerLine()
	sched := kernel.New(timer, func(msg string) { fatalf("scheduler: %s", msg) })
	sched.SetStrategy(st)

	if err := sched.InitScheduler(func() {}, nil); err != nil {
		fatalf("init: %v", err)
	}
	for _, p := range priorities {
		if sched.Exec(func() {}, p) == kernel.InvalidProcess {
			fatalf("exec: no free slot")
		}
	}
	sched.StartScheduler()

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	var ctx kernel.SavedContext
	for i := 0; i < *ticks; i++ {
		ctx = sched.Tick(ctx)
		fmt.Fprintf(w, "%d\n", sched.CurrentPid())
	}
}

func parseStrategy(name string) (kernel.Strategy, error) {
	switch name {
	case "even":
		return kernel.Even, nil
	case "random":
		return kernel.Random, nil
	case "round-robin":
		return kernel.RoundRobin, nil
	case "inactive-aging":
		return kernel.InactiveAging, nil
	case "run-to-completion":
		return kernel.RunToCompletion, nil
	default:
		return 0, fmt.Errorf("unknown strategy: %s", name)
	}
}

func parsePriorities(s string) ([]kernel.Priority, error) {
	var out []kernel.Priority
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		var v int
		if _, err := fmt.Sscanf(field, "%d", &v); err != nil || v < 0 || v > 255 {
			return nil, fmt.Errorf("invalid priority %q", field)
		}
		out = append(out, kernel.Priority(v))
	}
	return out, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
