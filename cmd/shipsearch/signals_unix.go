//go:build unix

package main

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

func notifySignals(c chan<- os.Signal) {
	signal.Notify(c, unix.SIGUSR1, unix.SIGINT, unix.SIGTERM)
}

func isDumpSignal(sig os.Signal) bool { return sig == unix.SIGUSR1 }
