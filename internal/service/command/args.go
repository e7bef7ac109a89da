package command

import (
	"strings"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
)

const argDelimiter = "--"

// Argument extracts the first --token following the matched phrase, e.g. "u1"
// from "more user info --u1". A missing or empty token reports false and the
// caller is expected to do nothing.
func Argument(inv core.Invocation) (string, bool) {
	rest := afterPhrase(inv)
	idx := strings.Index(rest, argDelimiter)
	if idx < 0 {
		return "", false
	}

	fields := strings.Fields(rest[idx+len(argDelimiter):])
	if len(fields) == 0 {
		return "", false
	}

	token := fields[0]
	if next := strings.Index(token, argDelimiter); next >= 0 {
		token = token[:next]
	}
	return token, token != ""
}

// HasFlag reports whether --name appears after the matched phrase.
func HasFlag(inv core.Invocation, name string) bool {
	return strings.Contains(strings.ToLower(afterPhrase(inv)), argDelimiter+strings.ToLower(name))
}

func afterPhrase(inv core.Invocation) string {
	lower := strings.ToLower(inv.Raw)
	// Lowercasing some runes changes byte length; offsets would not line up.
	if len(lower) != len(inv.Raw) {
		return inv.Raw
	}
	i := strings.Index(lower, inv.Phrase)
	if i < 0 {
		return inv.Raw
	}
	return inv.Raw[i+len(inv.Phrase):]
}
