package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-shipsearch/checkpoint"
	"github.com/forestrie/go-shipsearch/search"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const serviceName = "shipsearch"

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "shipsearch",
		Short: "Search for spaceships in Life-like cellular automata",
		Long: `shipsearch runs an exhaustive depth first search for orthogonal
spaceships of a given period and speed, confined to a strip of bounded width.
Long searches can be dumped to numbered files and resumed later.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.New(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "log level (DEBUG, INFO, NOOP, ...)")

	root.AddCommand(newSearchCmd(), newResumeCmd(), newPrintCmd())
	return root
}

type runConfig struct {
	dumpDir     string
	dumpNow     bool
	dumpAndExit bool
}

type engineBuilder func(log logger.Logger, dumper search.Dumper) (*search.Engine, error)

// runEngine runs the engine from build under a fresh run id, turning
// signals into dump and interrupt requests, and prints the outcome.
func runEngine(out io.Writer, build engineBuilder, cfg runConfig) error {
	runID := uuid.New()
	log := logger.Sugar.WithServiceName(fmt.Sprintf("%s/%s", serviceName, runID))

	store := &checkpoint.Store{Dir: cfg.dumpDir}
	e, err := build(log, store)
	if err != nil {
		return err
	}
	p := e.Params()
	printParams(out, p)
	log.Infof("run %s: rule %s width %d period %d offset %d symmetry %s",
		runID, p.Rule, p.Width, p.Period, p.Offset, p.Symmetry)

	if cfg.dumpAndExit {
		name, err := store.Dump(e.Snapshot())
		if err != nil {
			return fmt.Errorf("dump failed: %w", err)
		}
		fmt.Fprintf(out, "State dumped to %s\n", name)
		return nil
	}

	sigs := make(chan os.Signal, 1)
	notifySignals(sigs)
	defer signal.Stop(sigs)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case sig := <-sigs:
				if isDumpSignal(sig) {
					e.RequestDump()
					continue
				}
				e.Interrupt()
			case <-done:
				return
			}
		}
	}()

	if cfg.dumpNow {
		e.RequestDump()
	}
	fmt.Fprintln(out, "Starting search")
	res := e.Run()
	fmt.Fprintf(out, "Status: %s\nShips: %d\nCalculations: %d\nCPU time: %v\n",
		res.Status, len(res.Ships), res.Calcs, res.CPUTime)
	return nil
}

// printParams echoes normalized parameters in user facing units.
func printParams(out io.Writer, p search.Params) {
	pp := 2 * p.Period
	fmt.Fprintf(out, "Rule: %s\nPeriod: %d\nOffset: %d\nWidth: %d\nSymmetry: %s\n",
		p.Rule, p.Period, p.Offset, p.Width, p.Symmetry)
	if p.MaxLength > 0 {
		fmt.Fprintf(out, "Max length: %d\n", p.MaxLength)
	} else {
		fmt.Fprintf(out, "Depth limit: %d\n", p.DepthLimit-pp)
	}
	if p.FullPeriod > 0 {
		fmt.Fprintf(out, "Full period by depth %d\n", p.FullPeriod-pp+1)
	}
	if p.FullWidth > 0 {
		fmt.Fprintf(out, "Full period width: %d\n", p.FullWidth)
	}
	switch p.NumShips {
	case 0:
		fmt.Fprintln(out, "Search until exhausted.")
	case 1:
		fmt.Fprintln(out, "Stop search if a ship is found.")
	default:
		fmt.Fprintf(out, "Stop search if %d ships are found.\n", p.NumShips)
	}
	if p.DumpPeriod > 0 {
		fmt.Fprintf(out, "Dump period: 2^%d\n", p.DumpPeriod)
	}
	if !p.Reorder {
		fmt.Fprintln(out, "Use naive search order.")
	}
}
