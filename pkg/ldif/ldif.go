// Package ldif reads the context entry of a partition.
//
// A context entry is the root entry of a partition written by an
// administrator as LDIF-style lines, one "attributeName: value" pair per
// line. This is free text, so the parser is lenient: lines that do not look
// like an attribute are skipped instead of failing the whole document.
package ldif

import (
	"encoding/base64"
	"log/slog"
	"strings"
)

// Parse converts a block of LDIF lines into Attributes. It never fails.
// Blank lines are ignored, repeated names accumulate values in order.
// A value given after a double colon is decoded from base64.
func Parse(text string) *Attributes {
	res := NewAttributes()
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, val, ok := parseLine(line)
		if !ok {
			slog.Debug("Skipping context entry line", "line", line)
			continue
		}
		res.Add(name, val)
	}
	return res
}

func parseLine(line string) (string, string, bool) {
	name, val, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	name = strings.TrimSpace(name)
	if !isAttrName(name) {
		return "", "", false
	}

	if rest, isB64 := strings.CutPrefix(val, ":"); isB64 {
		bs, err := base64.StdEncoding.DecodeString(strings.TrimSpace(rest))
		if err != nil {
			return "", "", false
		}
		return name, string(bs), true
	}

	return name, strings.TrimSpace(val), true
}

// isAttrName accepts attribute descriptors: a letter or digit followed by
// letters, digits, hyphens, dots or option separators.
func isAttrName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case i > 0 && (r == '-' || r == '.' || r == ';'):
		default:
			return false
		}
	}
	return true
}
