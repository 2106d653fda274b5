//go:build !unix

package main

import (
	"os"
	"os/signal"
)

func notifySignals(c chan<- os.Signal) {
	signal.Notify(c, os.Interrupt)
}

func isDumpSignal(os.Signal) bool { return false }
