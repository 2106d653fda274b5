package main

import (
	"fmt"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-shipsearch/rule"
	"github.com/forestrie/go-shipsearch/search"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type searchFlags struct {
	config   string
	rule     string
	symmetry string
	initRows string
	dumpDir  string

	width      int
	period     int
	offset     int
	depthLimit int
	maxLength  int
	fullPeriod int
	fullWidth  int
	ships      int
	dump       int

	dumpNow     bool
	dumpAndExit bool
	naive       bool
}

func newSearchCmd() *cobra.Command {
	f := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Start a new search",
		Example: `  shipsearch search --width 6 --period 3 --offset 1 --symmetry even
  shipsearch search --config c3.yaml --ships 0 --dump 24`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.params(cmd)
			if err != nil {
				return err
			}
			var initial []uint16
			if f.initRows != "" {
				if initial, err = readInitialRows(f.initRows, p); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			return runEngine(out, func(log logger.Logger, d search.Dumper) (*search.Engine, error) {
				opts := []search.Option{search.WithOutput(out), search.WithDumper(d)}
				if initial != nil {
					opts = append(opts, search.WithInitialRows(initial))
				}
				return search.New(log, p, opts...)
			}, runConfig{dumpDir: f.dumpDir, dumpNow: f.dumpNow, dumpAndExit: f.dumpAndExit})
		},
	}

	def := search.DefaultParams()
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "YAML file of search parameters; flags override it")
	fl.StringVarP(&f.rule, "rule", "r", def.Rule.String(), "rule in B/S notation")
	fl.StringVarP(&f.symmetry, "symmetry", "s", def.Symmetry.String(), "asymmetric, odd, even or gutter")
	fl.IntVarP(&f.width, "width", "w", 0, "half width of the search strip (1-10)")
	fl.IntVarP(&f.period, "period", "p", 0, "period of the ship")
	fl.IntVarP(&f.offset, "offset", "k", 0, "cells moved per period")
	fl.IntVarP(&f.depthLimit, "depth-limit", "l", def.DepthLimit, "stop at this search depth")
	fl.IntVarP(&f.maxLength, "max-length", "m", 0, "maximum ship length in rows, 0 for none")
	fl.IntVarP(&f.fullPeriod, "full-period", "f", 0, "require the full period before this depth")
	fl.IntVar(&f.fullWidth, "full-width", 0, "require the full period in cells at or beyond this column")
	fl.IntVarP(&f.ships, "ships", "n", def.NumShips, "number of ships to find, 0 for all")
	fl.IntVarP(&f.dump, "dump", "d", 0, "dump state every 2^N calculations (N >= 20), 0 for never")
	fl.BoolVar(&f.dumpNow, "dump-now", false, "dump state before the first calculation")
	fl.BoolVarP(&f.dumpAndExit, "dump-and-exit", "j", false, "dump the prepared state and exit without searching")
	fl.BoolVar(&f.naive, "naive", false, "try candidate rows in plain order")
	fl.StringVarP(&f.initRows, "init-rows", "e", "", "file with the 2*period prefix rows")
	fl.StringVar(&f.dumpDir, "dump-dir", "", "directory for dump files")
	return cmd
}

// params starts from the defaults, applies the config file if any, then
// every flag given on the command line.
func (f *searchFlags) params(cmd *cobra.Command) (search.Params, error) {
	p := search.DefaultParams()
	if f.config != "" {
		b, err := os.ReadFile(f.config)
		if err != nil {
			return p, err
		}
		if err := yaml.Unmarshal(b, &p); err != nil {
			return p, fmt.Errorf("%s: %w", f.config, err)
		}
	}

	fl := cmd.Flags()
	var err error
	if fl.Changed("rule") {
		if p.Rule, err = rule.ParseRule(f.rule); err != nil {
			return p, err
		}
	}
	if fl.Changed("symmetry") {
		if p.Symmetry, err = rule.ParseSymmetry(f.symmetry); err != nil {
			return p, err
		}
	}
	ints := []struct {
		name string
		src  int
		dst  *int
	}{
		{"width", f.width, &p.Width},
		{"period", f.period, &p.Period},
		{"offset", f.offset, &p.Offset},
		{"depth-limit", f.depthLimit, &p.DepthLimit},
		{"max-length", f.maxLength, &p.MaxLength},
		{"full-period", f.fullPeriod, &p.FullPeriod},
		{"full-width", f.fullWidth, &p.FullWidth},
		{"ships", f.ships, &p.NumShips},
		{"dump", f.dump, &p.DumpPeriod},
	}
	for _, i := range ints {
		if fl.Changed(i.name) {
			*i.dst = i.src
		}
	}
	if fl.Changed("naive") {
		p.Reorder = !f.naive
	}
	return p, p.Validate()
}

func readInitialRows(path string, p search.Params) ([]uint16, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	rows, err := search.ReadInitialRows(file, p.Width, p.Period)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}
