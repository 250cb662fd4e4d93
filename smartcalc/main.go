// Package smartcalc is a calculator for arithmetic expressions with variables.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/smartcalc"
	"github.com/npillmayer/smartcalc/smartcalc/cli"
)

func main() {
	var stop context.CancelFunc
	smartcalc.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		<-smartcalc.SignalContext.Done()
		smartcalc.Exit(130)
	}()

	cli.Execute()
}
