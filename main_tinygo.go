//go:build tinygo

package main

import (
	"tinysched/app"
	"tinysched/hal"
)

func main() {
	app.Run(hal.New())
}

