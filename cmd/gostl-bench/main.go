// Command gostl-bench runs the comparative throughput harness in
// package bench and prints a report: gostl's containers against real
// third-party counterparts, on one goroutine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skipor/gostl/bench"
	"github.com/skipor/gostl/log"
	"github.com/skipor/gostl/zaplog"
)

var configPath string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gostl-bench",
		Short: "Compare gostl's containers against third-party counterparts",
		RunE:  run,
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML workload config file")
	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := log.LevelFromString(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	var logger log.Logger
	if cfg.UseZap {
		sink, err := zaplog.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build zap sink: %w", err)
		}
		logger = log.NewLoggerSink(level, sink)
	} else {
		logger = log.NewLogger(level, cmd.OutOrStdout())
	}

	results := bench.Run(cfg.N, logger)
	printReport(cmd, results)
	return nil
}

func printReport(cmd *cobra.Command, results []bench.Result) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-24s %10s %12s %12s %12s\n", "container", "entries", "insert", "find", "erase")
	for _, r := range results {
		fmt.Fprintf(w, "%-24s %10d %12s %12s %12s\n", r.Name, r.Entries, r.Insert, r.Find, r.Erase)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
