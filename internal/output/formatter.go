// Package output renders a QuickCheck report as plain text.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/girste/quickcheck/internal/audit"
)

const (
	// Heading is the first line of every report.
	Heading = "Linux Security QuickCheck"
	// Completion is the last line of every report.
	Completion = "QuickCheck complete."

	bannerWidth = 60
)

var banner = strings.Repeat("=", bannerWidth)

// ToText renders the full report, ending with a newline.
func ToText(r *audit.Report) string {
	var sb strings.Builder

	sb.WriteString(Heading + "\n")
	fmt.Fprintf(&sb, "Run time: %s\n", FormatRunTime(r.Timestamp))
	fmt.Fprintf(&sb, "User: %s\n", r.User)
	fmt.Fprintf(&sb, "Hostname: %s\n", r.Hostname)
	fmt.Fprintf(&sb, "OS: %s\n", r.OS)

	for _, s := range r.Sections {
		writeSection(&sb, s)
	}

	sb.WriteString("\n" + Completion + "\n")
	return sb.String()
}

// WriteText writes the rendered report to w.
func WriteText(w io.Writer, r *audit.Report) error {
	_, err := io.WriteString(w, ToText(r))
	return err
}

// writeSection emits a blank line, the banner-framed title and the body.
func writeSection(sb *strings.Builder, s audit.Section) {
	sb.WriteString("\n")
	sb.WriteString(banner + "\n")
	sb.WriteString(s.Title + "\n")
	sb.WriteString(banner + "\n")
	sb.WriteString(s.Body + "\n")
}

// FormatRunTime prints t as "2006-01-02 15:04:05.000000" in local time. The
// fractional part is omitted when the microseconds are zero.
func FormatRunTime(t time.Time) string {
	s := t.Format("2006-01-02 15:04:05")
	if us := t.Nanosecond() / 1000; us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s
}
