// Package audit runs the QuickCheck inspections and collects their results.
package audit

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/girste/quickcheck/internal/config"
	"github.com/girste/quickcheck/internal/sshd"
	"github.com/girste/quickcheck/internal/system"
	"github.com/girste/quickcheck/internal/util"
)

// Section titles, in report order.
const (
	TitleUsers    = "Logged-in Users"
	TitleSSH      = "SSH Configuration (Key Settings)"
	TitleFirewall = "Firewall Status (UFW)"
)

// Placeholders for tools that are not installed.
const (
	MsgNoSocketTool = "ss/netstat not available on this system."
	MsgNoUFW        = "UFW not installed (or not in PATH)."
)

// socketTools are tried in order; the first one on PATH is used.
var socketTools = []string{"ss", "netstat"}

// Runner executes read-only commands, degrading failures to
// system.Unavailable.
type Runner interface {
	Run(ctx context.Context, cmdParts ...string) string
	Available(name string) bool
}

// Section is one titled block of the report.
type Section struct {
	Title string
	Body  string
}

// Report is the outcome of one run.
type Report struct {
	RunID     uuid.UUID
	Timestamp time.Time
	User      string
	Hostname  string
	OS        string
	Sections  []Section
}

// Orchestrator coordinates the inspections. They run one after another on
// the calling goroutine.
type Orchestrator struct {
	runner   Runner
	cfg      *config.Config
	logger   *zap.Logger
	now      func() time.Time
	readSSHD func(path string) string
}

// NewOrchestrator creates an orchestrator. A nil cfg means defaults.
func NewOrchestrator(runner Runner, cfg *config.Config) *Orchestrator {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Orchestrator{
		runner:   runner,
		cfg:      cfg,
		logger:   util.GetLogger(),
		now:      time.Now,
		readSSHD: sshd.ReadSettings,
	}
}

// RunAudit performs every inspection and returns the report. It does not
// fail: each inspection substitutes a placeholder for data it cannot get.
func (o *Orchestrator) RunAudit(ctx context.Context) *Report {
	startTime := time.Now()
	report := &Report{
		RunID:     uuid.New(),
		Timestamp: o.now(),
	}
	logger := o.logger.With(zap.String("run_id", report.RunID.String()))
	logger.Info("Audit started")

	report.User = o.runner.Run(ctx, "whoami")
	report.Hostname = o.runner.Run(ctx, "hostname")
	report.OS = o.runner.Run(ctx, "uname", "-a")

	inspections := []struct {
		title string
		run   func(context.Context) string
	}{
		{TitleUsers, o.loggedInUsers},
		{o.portsTitle(), o.listeningPorts},
		{TitleSSH, o.sshSettings},
		{TitleFirewall, o.firewallStatus},
	}

	for _, in := range inspections {
		body := in.run(ctx)
		logger.Debug("Section collected", zap.String("section", in.title), zap.Int("bytes", len(body)))
		report.Sections = append(report.Sections, Section{Title: in.title, Body: body})
	}

	logger.Info("Audit completed", zap.Duration("duration", time.Since(startTime)))
	return report
}

func (o *Orchestrator) portsTitle() string {
	return "Listening Network Ports (top " + strconv.Itoa(o.cfg.PortLines) + ")"
}

func (o *Orchestrator) loggedInUsers(ctx context.Context) string {
	return o.runner.Run(ctx, "who")
}

func (o *Orchestrator) listeningPorts(ctx context.Context) string {
	tool, ok := system.FirstAvailable(o.runner.Available, socketTools...)
	if !ok {
		return MsgNoSocketTool
	}
	return FirstLines(o.runner.Run(ctx, tool, "-tuln"), o.cfg.PortLines)
}

func (o *Orchestrator) sshSettings(context.Context) string {
	return o.readSSHD(o.cfg.SSHDConfigPath)
}

func (o *Orchestrator) firewallStatus(ctx context.Context) string {
	if !o.runner.Available("ufw") {
		return MsgNoUFW
	}
	return o.runner.Run(ctx, "ufw", "status")
}

// FirstLines keeps at most n lines of out, in order. An empty result becomes
// system.Unavailable.
func FirstLines(out string, n int) string {
	if out == "" {
		return system.Unavailable
	}
	lines := strings.Split(out, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	joined := strings.Join(lines, "\n")
	if joined == "" {
		return system.Unavailable
	}
	return joined
}
