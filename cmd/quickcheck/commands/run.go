package commands

import (
	"context"
	"io"
	"os"

	"github.com/girste/quickcheck/internal/audit"
	"github.com/girste/quickcheck/internal/config"
	"github.com/girste/quickcheck/internal/log"
	"github.com/girste/quickcheck/internal/output"
	"github.com/girste/quickcheck/internal/system"
)

// RunReport prints the report to stdout. It always returns 0: missing tools
// and unreadable files show up inside the report, not as a failed run.
func RunReport() int {
	cfg := config.LoadOrDefault()
	return WriteReport(context.Background(), os.Stdout, system.NewExecutor(cfg.CommandTimeout()), cfg)
}

// WriteReport runs the audit with runner and writes the text report to w.
func WriteReport(ctx context.Context, w io.Writer, runner audit.Runner, cfg *config.Config) int {
	report := audit.NewOrchestrator(runner, cfg).RunAudit(ctx)
	if err := output.WriteText(w, report); err != nil {
		log.ErrorWithErr(err, "Failed to write report")
	}
	if executor, ok := runner.(*system.Executor); ok {
		m := executor.GetMetrics()
		log.Debugf("Commands: total=%d ok=%d failed=%d timed_out=%d", m.TotalCalls, m.SuccessCalls, m.FailedCalls, m.TimeoutCalls)
	}
	return 0
}
