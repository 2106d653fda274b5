package main

import (
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
)

func main() {
	err := newRootCmd().Execute()
	logger.OnExit()
	if err != nil {
		os.Exit(1)
	}
}
