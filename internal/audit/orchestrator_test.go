package audit

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/girste/quickcheck/internal/config"
	"github.com/girste/quickcheck/internal/system"
)

// fakeRunner answers commands from a table keyed by the joined argv.
type fakeRunner struct {
	installed map[string]bool
	outputs   map[string]string
	calls     []string
}

func (f *fakeRunner) Available(name string) bool {
	return f.installed[name]
}

func (f *fakeRunner) Run(_ context.Context, cmdParts ...string) string {
	cmd := strings.Join(cmdParts, " ")
	f.calls = append(f.calls, cmd)
	if out, ok := f.outputs[cmd]; ok {
		return out
	}
	return system.Unavailable
}

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return strings.Join(lines, "\n")
}

func newTestOrchestrator(r *fakeRunner) *Orchestrator {
	o := NewOrchestrator(r, nil)
	o.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	o.readSSHD = func(path string) string { return "port: 22 (" + path + ")" }
	return o
}

func sectionBody(t *testing.T, r *Report, prefix string) string {
	t.Helper()
	for _, s := range r.Sections {
		if strings.HasPrefix(s.Title, prefix) {
			return s.Body
		}
	}
	t.Fatalf("section %q not found", prefix)
	return ""
}

func TestRunAudit_SectionOrderAndIdentity(t *testing.T) {
	r := &fakeRunner{
		installed: map[string]bool{"ss": true, "ufw": true},
		outputs: map[string]string{
			"whoami":     "alice",
			"hostname":   "box",
			"uname -a":   "Linux box 6.1.0",
			"who":        "alice pts/0",
			"ss -tuln":   "Netid State",
			"ufw status": "Status: active",
		},
	}

	report := newTestOrchestrator(r).RunAudit(context.Background())

	if report.User != "alice" || report.Hostname != "box" || report.OS != "Linux box 6.1.0" {
		t.Errorf("identity = %q/%q/%q", report.User, report.Hostname, report.OS)
	}
	if report.RunID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("RunID not set")
	}
	if !report.Timestamp.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Errorf("Timestamp = %v", report.Timestamp)
	}

	wantTitles := []string{
		TitleUsers,
		"Listening Network Ports (top 20)",
		TitleSSH,
		TitleFirewall,
	}
	if len(report.Sections) != len(wantTitles) {
		t.Fatalf("got %d sections, want %d", len(report.Sections), len(wantTitles))
	}
	for i, title := range wantTitles {
		if report.Sections[i].Title != title {
			t.Errorf("section %d title = %q, want %q", i, report.Sections[i].Title, title)
		}
	}

	if got := sectionBody(t, report, TitleSSH); got != "port: 22 (/etc/ssh/sshd_config)" {
		t.Errorf("ssh body = %q", got)
	}
	if got := sectionBody(t, report, TitleFirewall); got != "Status: active" {
		t.Errorf("firewall body = %q", got)
	}

	wantCalls := []string{"whoami", "hostname", "uname -a", "who", "ss -tuln", "ufw status"}
	if strings.Join(r.calls, ",") != strings.Join(wantCalls, ",") {
		t.Errorf("calls = %v, want %v", r.calls, wantCalls)
	}
}

func TestRunAudit_Ports(t *testing.T) {
	tests := []struct {
		name      string
		installed map[string]bool
		outputs   map[string]string
		want      string
		wantCall  string
	}{
		{
			name:      "25 lines truncated to 20",
			installed: map[string]bool{"ss": true},
			outputs:   map[string]string{"ss -tuln": numberedLines(25)},
			want:      numberedLines(20),
			wantCall:  "ss -tuln",
		},
		{
			name:      "5 lines printed in full",
			installed: map[string]bool{"ss": true},
			outputs:   map[string]string{"ss -tuln": numberedLines(5)},
			want:      numberedLines(5),
			wantCall:  "ss -tuln",
		},
		{
			name:      "empty output",
			installed: map[string]bool{"ss": true},
			outputs:   map[string]string{"ss -tuln": ""},
			want:      system.Unavailable,
			wantCall:  "ss -tuln",
		},
		{
			name:      "failed command",
			installed: map[string]bool{"ss": true},
			want:      system.Unavailable,
			wantCall:  "ss -tuln",
		},
		{
			name:      "ss preferred over netstat",
			installed: map[string]bool{"ss": true, "netstat": true},
			outputs:   map[string]string{"ss -tuln": "from ss", "netstat -tuln": "from netstat"},
			want:      "from ss",
			wantCall:  "ss -tuln",
		},
		{
			name:      "netstat fallback",
			installed: map[string]bool{"netstat": true},
			outputs:   map[string]string{"netstat -tuln": "from netstat"},
			want:      "from netstat",
			wantCall:  "netstat -tuln",
		},
		{
			name:      "no socket tool",
			installed: map[string]bool{},
			want:      MsgNoSocketTool,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{installed: tt.installed, outputs: tt.outputs}
			report := newTestOrchestrator(r).RunAudit(context.Background())

			if got := sectionBody(t, report, "Listening Network Ports"); got != tt.want {
				t.Errorf("ports body = %q, want %q", got, tt.want)
			}

			var socketCalls []string
			for _, c := range r.calls {
				if strings.HasSuffix(c, "-tuln") {
					socketCalls = append(socketCalls, c)
				}
			}
			if tt.wantCall == "" {
				if len(socketCalls) != 0 {
					t.Errorf("socket tool invoked without being available: %v", socketCalls)
				}
			} else if len(socketCalls) != 1 || socketCalls[0] != tt.wantCall {
				t.Errorf("socket calls = %v, want [%s]", socketCalls, tt.wantCall)
			}
		})
	}
}

func TestRunAudit_FirewallNotInstalled(t *testing.T) {
	r := &fakeRunner{installed: map[string]bool{"ss": true}}
	report := newTestOrchestrator(r).RunAudit(context.Background())

	if got := sectionBody(t, report, TitleFirewall); got != MsgNoUFW {
		t.Errorf("firewall body = %q, want %q", got, MsgNoUFW)
	}
	for _, c := range r.calls {
		if strings.HasPrefix(c, "ufw") {
			t.Errorf("ufw invoked although not installed: %q", c)
		}
	}
	if len(report.Sections) != 4 {
		t.Errorf("got %d sections, want 4", len(report.Sections))
	}
}

func TestRunAudit_EverythingUnavailable(t *testing.T) {
	r := &fakeRunner{installed: map[string]bool{"ss": true, "ufw": true}}
	report := newTestOrchestrator(r).RunAudit(context.Background())

	for _, got := range []string{report.User, report.Hostname, report.OS} {
		if got != system.Unavailable {
			t.Errorf("identity field = %q, want %q", got, system.Unavailable)
		}
	}
	if got := sectionBody(t, report, TitleUsers); got != system.Unavailable {
		t.Errorf("users body = %q", got)
	}
	if got := sectionBody(t, report, TitleFirewall); got != system.Unavailable {
		t.Errorf("firewall body = %q", got)
	}
}

func TestRunAudit_ConfigOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.PortLines = 3
	cfg.SSHDConfigPath = "/tmp/custom_sshd"

	r := &fakeRunner{
		installed: map[string]bool{"ss": true},
		outputs:   map[string]string{"ss -tuln": numberedLines(10)},
	}
	o := NewOrchestrator(r, cfg)
	var gotPath string
	o.readSSHD = func(path string) string { gotPath = path; return "x" }

	report := o.RunAudit(context.Background())

	if report.Sections[1].Title != "Listening Network Ports (top 3)" {
		t.Errorf("ports title = %q", report.Sections[1].Title)
	}
	if report.Sections[1].Body != numberedLines(3) {
		t.Errorf("ports body = %q", report.Sections[1].Body)
	}
	if gotPath != "/tmp/custom_sshd" {
		t.Errorf("sshd path = %q", gotPath)
	}
}

func TestFirstLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"empty", "", 20, system.Unavailable},
		{"fewer than n", "a\nb", 20, "a\nb"},
		{"exactly n", "a\nb\nc", 3, "a\nb\nc"},
		{"more than n", "a\nb\nc\nd", 2, "a\nb"},
		{"crlf", "a\r\nb\r\nc", 2, "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstLines(tt.in, tt.n); got != tt.want {
				t.Errorf("FirstLines(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}
