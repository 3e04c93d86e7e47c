//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"tinysched/app"
	"tinysched/hal"
	"tinysched/kernel"
)

func main() {
	var cfg hal.HeadlessConfig
	var strategy string
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&strategy, "strategy", "even", "Initial scheduling strategy: even, random, round-robin, inactive-aging, run-to-completion.")
	flag.Parse()

	appCfg := app.Config{Strategy: parseStrategy(strategy)}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, func(h hal.HAL) func() error {
			return app.NewWithConfig(h, appCfg)
		}, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseStrategy(name string) kernel.Strategy {
	switch name {
	case "random":
		return kernel.Random
	case "round-robin":
		return kernel.RoundRobin
	case "inactive-aging":
		return kernel.InactiveAging
	case "run-to-completion":
		return kernel.RunToCompletion
	default:
		return kernel.Even
	}
}
