// Package sshd reads the key security settings from an SSH daemon
// configuration file.
package sshd

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/girste/quickcheck/internal/errors"
	"github.com/girste/quickcheck/internal/log"
)

// DefaultConfigPath is where OpenSSH keeps the daemon configuration.
const DefaultConfigPath = "/etc/ssh/sshd_config"

// Messages returned by ReadSettings instead of settings.
const (
	MsgNotFound   = "SSH config not found."
	MsgUnreadable = "Unable to read SSH config."
	MsgNoSettings = "No key SSH settings found (or file is non-standard)."
)

// Keys are the recognised settings, lower-cased, in print order.
var Keys = []string{"port", "permitrootlogin", "passwordauthentication"}

// Settings holds the first value seen for each recognised key.
type Settings struct {
	values map[string]string
}

// Get returns the value recorded for key and whether it was present.
func (s *Settings) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len is the number of recognised keys found.
func (s *Settings) Len() int {
	return len(s.values)
}

// String renders one "key: value" line per found key, in Keys order.
func (s *Settings) String() string {
	lines := make([]string, 0, len(Keys))
	for _, k := range Keys {
		if v, ok := s.values[k]; ok {
			lines = append(lines, k+": "+v)
		}
	}
	return strings.Join(lines, "\n")
}

// Parse scans r once, top to bottom. Blank lines, comments and lines with a
// single token are skipped. Key matching is case-insensitive; the first
// occurrence of a key wins and its value is kept verbatim, with runs of
// whitespace collapsed to one space. Invalid UTF-8 is dropped.
func Parse(r io.Reader) (*Settings, error) {
	settings := &Settings{values: make(map[string]string, len(Keys))}
	recognised := make(map[string]bool, len(Keys))
	for _, k := range Keys {
		recognised[k] = true
	}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			settings.scanLine(line, recognised)
		}
		if err == io.EOF {
			return settings, nil
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrFileOperation, "read: %v", err)
		}
	}
}

func (s *Settings) scanLine(line string, recognised map[string]bool) {
	line = strings.TrimSpace(strings.ToValidUTF8(line, ""))
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return
	}
	key := strings.ToLower(parts[0])
	if !recognised[key] {
		return
	}
	if _, seen := s.values[key]; seen {
		return
	}
	s.values[key] = strings.Join(parts[1:], " ")
}

// Load opens path and parses it. The error wraps ErrNotFound when the file
// does not exist and ErrFileOperation for any other open or read failure.
func Load(path string) (*Settings, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrNotFound, "%s", path)
		}
		return nil, errors.Wrap(errors.ErrFileOperation, "stat %s: %v", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrFileOperation, "open %s: %v", path, err)
	}
	defer f.Close()

	settings, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, "%s", path)
	}
	return settings, nil
}

// ReadSettings returns the key settings of the sshd configuration at path as
// printable text. It never fails: a missing file, an unreadable file and a
// file without any recognised key each produce a fixed sentence.
func ReadSettings(path string) string {
	settings, err := Load(path)
	switch {
	case errors.Is(err, errors.ErrNotFound):
		log.Debugf("sshd config not found: %v", err)
		return MsgNotFound
	case err != nil:
		log.Warnf("sshd config unreadable: %v", err)
		return MsgUnreadable
	case settings.Len() == 0:
		return MsgNoSettings
	}
	return settings.String()
}
