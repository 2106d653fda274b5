package main

import (
	"fmt"
	"path/filepath"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-shipsearch/checkpoint"
	"github.com/forestrie/go-shipsearch/search"
	"github.com/spf13/cobra"
)

func newResumeCmd() *cobra.Command {
	var dumpDir string
	var dumpNow bool

	cmd := &cobra.Command{
		Use:   "resume DUMPFILE",
		Short: "Continue a search from a dump file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := checkpoint.Load(args[0])
			if err != nil {
				return err
			}
			if dumpDir == "" {
				dumpDir = filepath.Dir(args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Resuming %s at depth %d\n", args[0], snap.Depth-2*snap.Params.Period)
			return runEngine(out, func(log logger.Logger, d search.Dumper) (*search.Engine, error) {
				return search.Resume(log, snap, search.WithOutput(out), search.WithDumper(d))
			}, runConfig{dumpDir: dumpDir, dumpNow: dumpNow})
		},
	}
	cmd.Flags().StringVar(&dumpDir, "dump-dir", "", "directory for dump files, defaults to the directory of DUMPFILE")
	cmd.Flags().BoolVar(&dumpNow, "dump-now", false, "dump state before the first calculation")
	return cmd
}

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print DUMPFILE",
		Short: "Show the parameters and current partial of a dump file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := checkpoint.Load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printParams(out, snap.Params)
			fmt.Fprintf(out, "Depth: %d\nShips closed: %d\n", snap.Depth-2*snap.Params.Period, len(snap.LastNonempty))
			fmt.Fprintln(out, search.RenderSnapshot(snap))
			return nil
		},
	}
}
