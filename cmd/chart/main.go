// Package main is the chart CLI entry point.
package main

import (
	"os"

	"github.com/tinywasm/chart/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		os.Exit(1)
	}
}
