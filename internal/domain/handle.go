package domain

import "strings"

// HandleSigil prefixes every stored handle.
const HandleSigil = "@"

// NormalizeHandle lowercases a raw handle and guarantees the "@" prefix.
// The empty string stays empty.
func NormalizeHandle(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	if !strings.HasPrefix(s, HandleSigil) {
		s = HandleSigil + s
	}
	return s
}
