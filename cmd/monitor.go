package cmd

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"winctl/internal/monitor"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch for windows appearing and disappearing",
	Long: `Poll the window list and emit lifecycle events as JSONL to stdout.

The first line is the baseline snapshot; afterwards one line is emitted
per window that appears or disappears. Attribute changes on surviving
windows are not events. Stop with Ctrl+C.

Output is always JSONL regardless of the --format flag.`,
	Args: cobra.NoArgs,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	monitorCmd.Flags().Int("interval", 0, "Polling interval in milliseconds (default from config, 1000)")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	interval := time.Duration(cfg.PollInterval)
	if ms, _ := cmd.Flags().GetInt("interval"); ms > 0 {
		interval = time.Duration(ms) * time.Millisecond
	}

	c := newComponents()
	m := monitor.New(c.dir, interval, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)

	return m.Run(ctx, func(ev monitor.Event) {
		enc.Encode(ev)
	})
}
