package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/girste/quickcheck/internal/audit"
)

func sampleReport() *audit.Report {
	return &audit.Report{
		Timestamp: time.Date(2026, 10, 17, 9, 30, 0, 123456789, time.Local),
		User:      "alice",
		Hostname:  "box",
		OS:        "Linux box 6.1.0 x86_64",
		Sections: []audit.Section{
			{Title: audit.TitleUsers, Body: "alice pts/0"},
			{Title: "Listening Network Ports (top 20)", Body: "Netid State\nudp UNCONN"},
			{Title: audit.TitleSSH, Body: "port: 22"},
			{Title: audit.TitleFirewall, Body: audit.MsgNoUFW},
		},
	}
}

func TestToText(t *testing.T) {
	banner := strings.Repeat("=", 60)
	want := strings.Join([]string{
		"Linux Security QuickCheck",
		"Run time: 2026-10-17 09:30:00.123456",
		"User: alice",
		"Hostname: box",
		"OS: Linux box 6.1.0 x86_64",
		"",
		banner,
		"Logged-in Users",
		banner,
		"alice pts/0",
		"",
		banner,
		"Listening Network Ports (top 20)",
		banner,
		"Netid State",
		"udp UNCONN",
		"",
		banner,
		"SSH Configuration (Key Settings)",
		banner,
		"port: 22",
		"",
		banner,
		"Firewall Status (UFW)",
		banner,
		"UFW not installed (or not in PATH).",
		"",
		"QuickCheck complete.",
		"",
	}, "\n")

	if got := ToText(sampleReport()); got != want {
		t.Errorf("ToText() mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if buf.String() != ToText(sampleReport()) {
		t.Error("WriteText() output differs from ToText()")
	}
}

func TestBannerWidth(t *testing.T) {
	for _, line := range strings.Split(ToText(sampleReport()), "\n") {
		if strings.HasPrefix(line, "=") && len(line) != 60 {
			t.Errorf("banner length = %d, want 60", len(line))
		}
	}
}

func TestFormatRunTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"microseconds", time.Date(2026, 1, 2, 3, 4, 5, 7000, time.Local), "2026-01-02 03:04:05.000007"},
		{"sub-microsecond truncated", time.Date(2026, 1, 2, 3, 4, 5, 999, time.Local), "2026-01-02 03:04:05"},
		{"whole second", time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local), "2026-01-02 03:04:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRunTime(tt.in); got != tt.want {
				t.Errorf("FormatRunTime() = %q, want %q", got, tt.want)
			}
		})
	}
}
